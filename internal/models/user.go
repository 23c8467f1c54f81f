package models

// User is a single account. Password holds the bcrypt hash of the user's
// password, never the plaintext; the json key keeps the historical document
// shape.
type User struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	TodoLog  *TodoLog `json:"todoLog"`
}

// Clone returns an independent copy of the user and their todo log.
func (u *User) Clone() *User {
	clone := &User{
		Username: u.Username,
		Password: u.Password,
	}
	if u.TodoLog != nil {
		clone.TodoLog = u.TodoLog.Clone()
	}
	return clone
}

// Directory maps usernames to their accounts. It is the single persisted
// root object.
type Directory map[string]*User
