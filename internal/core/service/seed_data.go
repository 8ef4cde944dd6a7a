package service

// seedUser is one row of the built-in dataset inserted by Seed. Passwords
// are hashed freshly on every seed run.
type seedUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
}

var dummyUsers = []seedUser{
	{FirstName: "John", LastName: "Smith", Email: "john.smith@example.com", Password: "password123", Phone: "555-0101", Address: "123 Main St", City: "Springfield", State: "IL", ZipCode: "62701"},
	{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com", Password: "password123", Phone: "555-0102", Address: "456 Oak Ave", City: "Portland", State: "OR", ZipCode: "97201"},
	{FirstName: "Bob", LastName: "Johnson", Email: "bob.johnson@example.com", Password: "password123", Phone: "555-0103", Address: "789 Pine Rd", City: "Austin", State: "TX", ZipCode: "73301"},
	{FirstName: "Alice", LastName: "Lee", Email: "alice.lee@example.com", Password: "password123", Phone: "555-0104", Address: "321 Elm St", City: "Denver", State: "CO", ZipCode: "80201"},
	{FirstName: "Charlie", LastName: "Davis", Email: "charlie.davis@example.com", Password: "password123", Phone: "555-0105", Address: "654 Maple Dr", City: "Seattle", State: "WA", ZipCode: "98101"},
	{FirstName: "Diana", LastName: "Martinez", Email: "diana.martinez@example.com", Password: "password123", Phone: "555-0106", Address: "987 Cedar Ln", City: "Miami", State: "FL", ZipCode: "33101"},
	{FirstName: "Ethan", LastName: "Brown", Email: "ethan.brown@example.com", Password: "password123", Phone: "555-0107", Address: "147 Birch Ct", City: "Boston", State: "MA", ZipCode: "02101"},
	{FirstName: "Grace", LastName: "Wilson", Email: "grace.wilson@example.com", Password: "password123", Phone: "555-0108", Address: "258 Walnut Way", City: "Chicago", State: "IL", ZipCode: "60601"},
}
