package dto

// CreateClientRequest body para POST /clients. Solo name es obligatorio;
// email, phone y address vacíos se persisten como NULL.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// UpdateClientRequest body para PUT /clients/:id. Punteros para distinguir
// campo ausente (conserva el valor almacenado) de campo enviado.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
}

// ClientResponse cliente en respuestas. Los opcionales van como punteros
// para serializar null cuando no hay valor.
type ClientResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// CreatedResponse id asignado en POST /clients.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// UpdatedResponse filas afectadas en PUT /clients/:id.
type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

// DeletedResponse filas afectadas en DELETE /clients/:id.
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
