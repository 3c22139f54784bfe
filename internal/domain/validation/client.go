// Package validation contiene las reglas puras (sin I/O) para los payloads
// de clientes. Cada función devuelve la lista completa de mensajes violados;
// lista vacía significa "proceder".
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Forma local@dominio.tld, deliberadamente simple. El teléfono admite dígitos
// y símbolos comunes, entre 7 y 20 caracteres.
var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+()\-.\s]{7,20}$`)
)

const maxNameLen = 100

// ClientInput payload propuesto para create o update. Punteros: nil = campo
// ausente; la distinción presente/ausente es parte del contrato del update.
type ClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Status  *string
}

// ValidateCreate valida un payload de creación: name obligatorio, no blanco
// y de hasta 100 caracteres; email y phone solo se validan si vienen con
// valor. Address no tiene restricción de formato.
func ValidateCreate(in ClientInput) []string {
	var errs []string
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, "name es requerido")
	} else if utf8.RuneCountInString(strings.TrimSpace(*in.Name)) > maxNameLen {
		errs = append(errs, "name supera los 100 caracteres")
	}
	errs = appendOptionalErrs(errs, in)
	return errs
}

// ValidateUpdate valida un payload parcial: solo se aplican reglas a los
// campos presentes. La ausencia nunca es error; name presente pero blanco sí.
func ValidateUpdate(in ClientInput) []string {
	var errs []string
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			errs = append(errs, "name es requerido si se envía")
		} else if utf8.RuneCountInString(strings.TrimSpace(*in.Name)) > maxNameLen {
			errs = append(errs, "name supera los 100 caracteres")
		}
	}
	errs = appendOptionalErrs(errs, in)
	return errs
}

// appendOptionalErrs reglas compartidas: email y phone solo cuando vienen
// presentes y no vacíos (vacío equivale a ausente, como en el update).
func appendOptionalErrs(errs []string, in ClientInput) []string {
	if in.Email != nil && *in.Email != "" && !emailRe.MatchString(*in.Email) {
		errs = append(errs, "email inválido")
	}
	if in.Phone != nil && *in.Phone != "" && !phoneRe.MatchString(*in.Phone) {
		errs = append(errs, "phone inválido")
	}
	return errs
}

// NormalizeStatus reduce cualquier entrada al par {active, inactive}: solo la
// cadena "inactive" (case-insensitive, con espacios alrededor) se respeta,
// todo lo demás normaliza a "active".
func NormalizeStatus(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "inactive") {
		return "inactive"
	}
	return "active"
}
