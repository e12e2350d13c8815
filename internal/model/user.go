package model

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Address      string
	CodeShop     string
	SpinsToday   int
	LastSpinDate time.Time
	CreatedAt    time.Time
}

// UserForm - контактные данные, которые посетитель вводит перед вращением
type UserForm struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	CodeShop string
}

// UserCheck - результат проверки существования пользователя на бэкенде
type UserCheck struct {
	Exists bool
	User   *User
}

// Entry - пользователь, допущенный к колесу, и остаток его вращений
type Entry struct {
	User           User
	RemainingSpins int
	Created        bool
}
