package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// OnlyDigits remove máscaras de entrada (pontos, traços, parênteses).
func OnlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// ValidateCPF verifica os dois dígitos verificadores do CPF.
func ValidateCPF(cpf string) bool {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no cálculo mas são inválidos.
	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	dv1 := 0
	if rest := sum % 11; rest >= 2 {
		dv1 = 11 - rest
	}
	if int(digits[9]-'0') != dv1 {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	dv2 := 0
	if rest := sum % 11; rest >= 2 {
		dv2 = 11 - rest
	}

	return int(digits[10]-'0') == dv2
}

// ValidatePhone aceita telefones brasileiros com ou sem máscara (DDD + 8 ou 9 dígitos).
func ValidatePhone(phone string) bool {
	digits := OnlyDigits(phone)
	return len(digits) >= 10 && len(digits) <= 11
}

func ValidateCEP(cep string) bool {
	return len(OnlyDigits(cep)) == 8
}

// ValidatePassword exige no mínimo 8 caracteres com maiúscula, minúscula e número.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

func ValidateNamePart(name string) bool {
	if len(name) < 2 {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != '-' && r != ' ' && r != '\'' {
			return false
		}
	}

	return true
}
