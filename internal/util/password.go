package util

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost 注册时使用的默认工作因子。
const DefaultBcryptCost = 12

// HashPassword 使用 bcrypt 生成密码哈希。
// 空密码也照常哈希（是否允许空密码由上层校验决定）。
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword 验证明文密码与存储的哈希是否匹配。
// 哈希格式非法时返回 false，不报错。
func CheckPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
