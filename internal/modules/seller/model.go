package seller

// Seller is a parts supplier listed on the storefront.
type Seller struct {
	ID             string   `json:"id" yaml:"id"`
	CompanyName    string   `json:"companyName" yaml:"companyName"`
	ContactEmail   string   `json:"contactEmail" yaml:"contactEmail"`
	Phone          string   `json:"phone" yaml:"phone"`
	Address        string   `json:"address" yaml:"address"`
	Certifications []string `json:"certifications" yaml:"certifications"`
	Logo           string   `json:"logo" yaml:"logo"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
}
