package domain

// CustomerProfile holds the personal details of a customer, decoupled
// from the credential record that references it.
type CustomerProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PhoneNo   string `json:"phone_no"`
	Address   string `json:"address"`
}

// DisplayName is the name shown in dashboards and session state.
func (p CustomerProfile) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// SupplierProfile holds the business details of a supplier.
type SupplierProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	PhoneNo string `json:"phone_no"`
	Address string `json:"address"`
}

// AdminDisplayName is the fixed display name for admin accounts, which
// have no profile row.
const AdminDisplayName = "Admin"
