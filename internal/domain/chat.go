package domain

// ChatRequest es el cuerpo que envía la plataforma de voz a /chat y /webhook.
// CustomerName se acepta por compatibilidad pero no participa del prompt.
type ChatRequest struct {
	Message      string `json:"message" binding:"required"`
	CustomerName string `json:"customerName,omitempty"`
}

// ChatResponse es la respuesta del asistente, ya sin espacios sobrantes.
type ChatResponse struct {
	Response string `json:"response"`
}
