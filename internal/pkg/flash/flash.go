package flash

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Severity tags for flash messages. Templates map them to styling.
const (
	SeveritySuccess = "success"
	SeverityDanger  = "danger"
	SeverityError   = "error"
)

const cookieName = "catalog_flash"

// Message is a short-lived notification shown to the user on the next
// rendered page.
type Message struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Set queues a flash message for the next rendered page. Messages survive one
// redirect because they travel in a cookie rather than in process state.
func Set(c *gin.Context, severity, message string) {
	messages := append(pending(c), Message{Severity: severity, Message: message})

	data, err := json.Marshal(messages)
	if err != nil {
		return
	}

	c.SetCookie(cookieName, base64.URLEncoding.EncodeToString(data), 60, "/", "", false, true)
}

// Take returns all queued flash messages and clears them. An unreadable
// cookie is treated as no messages.
func Take(c *gin.Context) []Message {
	messages := pending(c)
	if messages != nil {
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
	}
	return messages
}

func pending(c *gin.Context) []Message {
	value, err := c.Cookie(cookieName)
	if err != nil {
		return nil
	}

	data, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil
	}

	return messages
}
