package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("maria@exemplo.com.br"))
	assert.True(t, ValidateEmail("joao.silva+teste@gmail.com"))
	assert.False(t, ValidateEmail("sem-arroba.com"))
	assert.False(t, ValidateEmail("maria@"))
	assert.False(t, ValidateEmail(""))
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "52998224725", OnlyDigits("529.982.247-25"))
	assert.Equal(t, "11987654321", OnlyDigits("(11) 98765-4321"))
	assert.Equal(t, "", OnlyDigits("abc"))
}

func TestValidateCPF(t *testing.T) {
	assert.True(t, ValidateCPF("52998224725"))
	assert.True(t, ValidateCPF("529.982.247-25"))

	// Dígito verificador errado.
	assert.False(t, ValidateCPF("52998224726"))
	// Todos os dígitos iguais passam no cálculo mas são inválidos.
	assert.False(t, ValidateCPF("111.111.111-11"))
	assert.False(t, ValidateCPF("123"))
	assert.False(t, ValidateCPF(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("(11) 98765-4321"))
	assert.True(t, ValidatePhone("1187654321"))
	assert.False(t, ValidatePhone("98765-4321"))
	assert.False(t, ValidatePhone("119876543210"))
}

func TestValidateCEP(t *testing.T) {
	assert.True(t, ValidateCEP("01310-100"))
	assert.True(t, ValidateCEP("01310100"))
	assert.False(t, ValidateCEP("0131010"))
	assert.False(t, ValidateCEP(""))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Senha123"))
	assert.False(t, ValidatePassword("senha123"), "sem maiúscula")
	assert.False(t, ValidatePassword("SENHA123"), "sem minúscula")
	assert.False(t, ValidatePassword("SenhaForte"), "sem número")
	assert.False(t, ValidatePassword("Se1"), "curta demais")
}

func TestValidateNamePart(t *testing.T) {
	assert.True(t, ValidateNamePart("Maria"))
	assert.True(t, ValidateNamePart("Ana-Luísa"))
	assert.False(t, ValidateNamePart("A"))
	assert.False(t, ValidateNamePart("Jo4o"))
}
