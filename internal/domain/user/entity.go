package user

// User is the marketplace's view of a person. Owned by the upstream API; the gateway only
// reconstructs it from responses.
type User struct {
	id          int64
	firstName   string
	lastName    string
	email       string
	role        Role
	status      Status
	country     string
	city        string
	address     string
	phoneNumber string
	description string
	businessID  *int64
	avatarID    *int64
}

type Params struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	Role        string
	Status      string
	Country     string
	City        string
	Address     string
	PhoneNumber string
	Description string
	BusinessID  *int64
	AvatarID    *int64
}

func ReconstructUser(p Params) (*User, error) {
	role, err := NewRole(p.Role)
	if err != nil {
		return nil, err
	}

	return &User{
		id:          p.ID,
		firstName:   p.FirstName,
		lastName:    p.LastName,
		email:       p.Email,
		role:        role,
		status:      Status(p.Status),
		country:     p.Country,
		city:        p.City,
		address:     p.Address,
		phoneNumber: p.PhoneNumber,
		description: p.Description,
		businessID:  p.BusinessID,
		avatarID:    p.AvatarID,
	}, nil
}

func (u *User) FullName() string {
	switch {
	case u.firstName == "":
		return u.lastName
	case u.lastName == "":
		return u.firstName
	default:
		return u.firstName + " " + u.lastName
	}
}

func (u *User) IsBusiness() bool { return u.role == RoleBusiness }
func (u *User) IsCustomer() bool { return u.role == RoleCustomer }

func (u *User) ID() int64           { return u.id }
func (u *User) FirstName() string   { return u.firstName }
func (u *User) LastName() string    { return u.lastName }
func (u *User) Email() string       { return u.email }
func (u *User) Role() Role          { return u.role }
func (u *User) Status() Status      { return u.status }
func (u *User) Country() string     { return u.country }
func (u *User) City() string        { return u.city }
func (u *User) Address() string     { return u.address }
func (u *User) PhoneNumber() string { return u.phoneNumber }
func (u *User) Description() string { return u.description }
func (u *User) BusinessID() *int64  { return u.businessID }
func (u *User) AvatarID() *int64    { return u.avatarID }
