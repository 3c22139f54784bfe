package entity

// Estados válidos para Client.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Client representa un contacto de la agenda. Los campos opcionales son
// punteros: nil equivale a NULL en el store.
type Client struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	Status    string // active, inactive
	CreatedAt string // texto UTC del store (strftime con milisegundos)
	UpdatedAt string
}

// ClientPatch describe una actualización parcial: cada campo nil queda fuera
// del UPDATE y conserva el valor almacenado (COALESCE con el existente).
type ClientPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Status  *string
}
