package entity

// Service is a clinical service offered by the practice
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Icon        string `json:"icon"`
}

// Article is a published education piece
type Article struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// Inquiry is a contact-form submission
type Inquiry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
}
