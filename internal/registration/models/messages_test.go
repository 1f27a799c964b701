package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"regform/pkg/document"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		field string
		kind  document.Kind
		want  string
	}{
		{FieldEmail, document.Individual, "Por favor, preencha o campo e-mail corretamente."},
		{FieldName, document.Organization, "Por favor, insira um nome válido."},
		{FieldDocument, document.Individual, "Por favor, insira um CPF válido."},
		{FieldDocument, document.Organization, "Por favor, insira um CNPJ válido."},
		{FieldDate, document.Individual, "Por favor, insira uma data de nascimento válida."},
		{FieldDate, document.Organization, "Por favor, insira uma data de abertura válida."},
		{FieldPhone, document.Individual, "Por favor, insira um telefone válido."},
		{FieldPassword, document.Individual, "A senha não atende a todos os requisitos"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Message(tt.field, tt.kind), tt.field)
	}
	assert.NotEmpty(t, Message("unknown", document.Individual))
}

func TestKind(t *testing.T) {
	assert.Equal(t, document.Organization, Registration{IsPJ: true}.Kind())
	assert.Equal(t, document.Individual, Registration{}.Kind())
}
