package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 对超过 72 字节的输入直接报错；错误必须上抛，
// 否则空哈希落库后该账户永远登录不上
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
