package domain

// Party holds the naming fields shared by customers and vendors.
type Party struct {
	CompanyName *string `json:"companyName,omitempty"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
}

// DisplayName returns the company name when one is set, otherwise the
// contact's first and last name joined by a single space. Customer and
// vendor rankings both resolve names through this method.
func (p Party) DisplayName() string {
	if p.CompanyName != nil && *p.CompanyName != "" {
		return *p.CompanyName
	}
	return p.FirstName + " " + p.LastName
}
