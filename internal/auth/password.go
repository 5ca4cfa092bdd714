package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"jobsearch/internal/errcode"
)

// Cost is the bcrypt work factor. Tests lower it.
var Cost = bcrypt.DefaultCost

// HashPassword 使用 bcrypt 生成密码哈希，Employer 与 User 的密码均不以明文落库。
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errcode.Fields("Validation failed", []errcode.FieldError{
			{Field: "password", Error: "must not exceed 72 bytes"},
		})
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPasswordHash 校验密码是否匹配哈希。
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
