package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/clientes-api/internal/domain/validation"
)

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// ValidateCreate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateCreate_PayloadCompletoValido(t *testing.T) {
	errs := validation.ValidateCreate(validation.ClientInput{
		Name:  strPtr("Alice"),
		Email: strPtr("a@b.com"),
		Phone: strPtr("555-1234"),
	})
	assert.Empty(t, errs)
}

func TestValidateCreate_SoloName(t *testing.T) {
	// email/phone/address ausentes no son error
	errs := validation.ValidateCreate(validation.ClientInput{Name: strPtr("Bob")})
	assert.Empty(t, errs)
}

func TestValidateCreate_NameAusenteOBlanco(t *testing.T) {
	cases := map[string]validation.ClientInput{
		"ausente":       {},
		"vacío":         {Name: strPtr("")},
		"solo espacios": {Name: strPtr("   ")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			errs := validation.ValidateCreate(in)
			assert.Len(t, errs, 1)
			assert.Contains(t, errs[0], "name", "el mensaje debe mencionar name")
		})
	}
}

func TestValidateCreate_NameDemasiadoLargo(t *testing.T) {
	errs := validation.ValidateCreate(validation.ClientInput{
		Name: strPtr(strings.Repeat("x", 101)),
	})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "name")
}

func TestValidateCreate_NameEnElLimite(t *testing.T) {
	errs := validation.ValidateCreate(validation.ClientInput{
		Name: strPtr(strings.Repeat("x", 100)),
	})
	assert.Empty(t, errs, "100 caracteres exactos debe aceptarse")
}

func TestValidateCreate_NameMultibyte(t *testing.T) {
	// El límite cuenta caracteres, no bytes: "á" ocupa dos bytes en UTF-8.
	errs := validation.ValidateCreate(validation.ClientInput{
		Name: strPtr(strings.Repeat("á", 60)),
	})
	assert.Empty(t, errs, "60 caracteres acentuados debe aceptarse")

	errs = validation.ValidateCreate(validation.ClientInput{
		Name: strPtr(strings.Repeat("á", 100)),
	})
	assert.Empty(t, errs, "100 caracteres acentuados es el límite exacto")

	errs = validation.ValidateCreate(validation.ClientInput{
		Name: strPtr(strings.Repeat("á", 101)),
	})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "name")
}

func TestValidateCreate_EmailInvalido(t *testing.T) {
	for _, email := range []string{"sin-arroba", "a@b", "a @b.com", "@b.com", "a@.com "} {
		t.Run(email, func(t *testing.T) {
			errs := validation.ValidateCreate(validation.ClientInput{
				Name:  strPtr("Alice"),
				Email: strPtr(email),
			})
			assert.Equal(t, []string{"email inválido"}, errs)
		})
	}
}

func TestValidateCreate_EmailValido(t *testing.T) {
	for _, email := range []string{"a@b.com", "maria.lopez@example.org", "x+y@dom.co"} {
		t.Run(email, func(t *testing.T) {
			errs := validation.ValidateCreate(validation.ClientInput{
				Name:  strPtr("Alice"),
				Email: strPtr(email),
			})
			assert.Empty(t, errs)
		})
	}
}

func TestValidateCreate_PhoneInvalido(t *testing.T) {
	for _, phone := range []string{"123456", "abc-1234", strings.Repeat("9", 21)} {
		t.Run(phone, func(t *testing.T) {
			errs := validation.ValidateCreate(validation.ClientInput{
				Name:  strPtr("Alice"),
				Phone: strPtr(phone),
			})
			assert.Equal(t, []string{"phone inválido"}, errs)
		})
	}
}

func TestValidateCreate_PhoneValido(t *testing.T) {
	for _, phone := range []string{"555-1234", "+57 (1) 234-5678", "1234567"} {
		t.Run(phone, func(t *testing.T) {
			errs := validation.ValidateCreate(validation.ClientInput{
				Name:  strPtr("Alice"),
				Phone: strPtr(phone),
			})
			assert.Empty(t, errs)
		})
	}
}

func TestValidateCreate_AcumulaTodosLosMensajes(t *testing.T) {
	errs := validation.ValidateCreate(validation.ClientInput{
		Email: strPtr("no-es-email"),
		Phone: strPtr("abc"),
	})
	// name + email + phone, todos reportados a la vez
	assert.Len(t, errs, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateUpdate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateUpdate_AusenciaNoEsError(t *testing.T) {
	errs := validation.ValidateUpdate(validation.ClientInput{})
	assert.Empty(t, errs, "un patch vacío es válido")
}

func TestValidateUpdate_NamePresentePeroBlanco(t *testing.T) {
	errs := validation.ValidateUpdate(validation.ClientInput{Name: strPtr("  ")})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "name")
}

func TestValidateUpdate_SoloCamposPresentes(t *testing.T) {
	// email inválido presente, name ausente: solo un error
	errs := validation.ValidateUpdate(validation.ClientInput{Email: strPtr("malo")})
	assert.Equal(t, []string{"email inválido"}, errs)
}

func TestValidateUpdate_EmailVacioEquivaleAusente(t *testing.T) {
	errs := validation.ValidateUpdate(validation.ClientInput{Email: strPtr("")})
	assert.Empty(t, errs)
}

func TestValidateUpdate_NameMultibyte(t *testing.T) {
	errs := validation.ValidateUpdate(validation.ClientInput{
		Name: strPtr(strings.Repeat("ñ", 100)),
	})
	assert.Empty(t, errs, "100 caracteres multibyte debe aceptarse también en update")

	errs = validation.ValidateUpdate(validation.ClientInput{
		Name: strPtr(strings.Repeat("ñ", 101)),
	})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "name")
}

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"inactive":   "inactive",
		"INACTIVE":   "inactive",
		" Inactive ": "inactive",
		"active":     "active",
		"":           "active",
		"archivado":  "active",
	}
	for in, want := range cases {
		assert.Equal(t, want, validation.NormalizeStatus(in), "entrada %q", in)
	}
}
