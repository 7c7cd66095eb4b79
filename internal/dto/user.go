// Package dto 负责入参整形与字段校验。
// 约定：绑定后先 Normalize（trim 字符串、email 转小写），
// 再 Validate，返回 field→message 映射，nil 表示通过。
package dto

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CreateUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d *CreateUserDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
}

func (d *CreateUserDTO) Validate() map[string]string {
	errs := map[string]string{}
	if utf8.RuneCountInString(d.Name) < 3 {
		errs["name"] = "name must be at least 3 characters"
	}
	if !emailRe.MatchString(d.Email) {
		errs["email"] = "invalid email"
	}
	if len(d.Password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateUserDTO struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (d *UpdateUserDTO) Normalize() {
	if d.Name != nil {
		*d.Name = strings.TrimSpace(*d.Name)
	}
	if d.Email != nil {
		*d.Email = strings.ToLower(strings.TrimSpace(*d.Email))
	}
}

// Validate 只校验出现的字段（部分更新）
func (d *UpdateUserDTO) Validate() map[string]string {
	errs := map[string]string{}
	if d.Name != nil && utf8.RuneCountInString(*d.Name) < 3 {
		errs["name"] = "name must be at least 3 characters"
	}
	if d.Email != nil && !emailRe.MatchString(*d.Email) {
		errs["email"] = "invalid email"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
