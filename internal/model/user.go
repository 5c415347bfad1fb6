package model

// UserRole 来自 JWT 的角色声明，用户表由账号服务维护
type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)
