package entity

// User representa un usuario del sistema. Password guarda siempre el hash
// bcrypt, nunca texto plano.
type User struct {
	ID       int64
	Email    string
	Password string
}
