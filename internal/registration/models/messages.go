package models

import "regform/pkg/document"

// MessageRegistered is returned when every field passes.
const MessageRegistered = "Usuário cadastrado com sucesso!"

// Message returns the pt-BR message shown when field fails validation.
func Message(field string, kind document.Kind) string {
	switch field {
	case FieldEmail:
		return "Por favor, preencha o campo e-mail corretamente."
	case FieldName:
		return "Por favor, insira um nome válido."
	case FieldDocument:
		return "Por favor, insira um " + kind.Label() + " válido."
	case FieldDate:
		if kind == document.Organization {
			return "Por favor, insira uma data de abertura válida."
		}
		return "Por favor, insira uma data de nascimento válida."
	case FieldPhone:
		return "Por favor, insira um telefone válido."
	case FieldPassword:
		return "A senha não atende a todos os requisitos"
	default:
		return "Por favor, verifique os dados informados."
	}
}
