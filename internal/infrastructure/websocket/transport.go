package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"negobot/internal/domain/entity"
)

// Frame types of the chat transport.
const (
	FrameTypeMessage = "message"
	FrameTypeAck     = "ack"
	FrameTypeReply   = "reply"
	FrameTypeError   = "error"
)

// Frame is one chat transport message. Inbound frames carry the sender
// and text; every inbound frame is acknowledged and answered with
// exactly one reply frame.
type Frame struct {
	Type      string `json:"type"`
	ID        string `json:"id,omitempty"`
	AckID     string `json:"ack_id,omitempty"`
	Sender    string `json:"sender,omitempty"`
	Text      string `json:"text,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Negotiator is the turn pipeline the transport feeds into.
type Negotiator interface {
	HandleMessage(ctx context.Context, buyerID, text string) (*entity.NegotiationResult, error)
}

func newFrame(frameType string) Frame {
	return Frame{
		Type:      frameType,
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// HandleInbound processes one inbound frame: acknowledge, run the turn,
// send the single reply.
func (m *Manager) HandleInbound(client *Client, negotiator Negotiator, raw []byte) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		log.Printf("Chat transport: malformed frame from %s: %v", client.BuyerID, err)
		m.sendFrame(client, newFrame(FrameTypeError))
		return
	}

	ack := newFrame(FrameTypeAck)
	ack.AckID = frame.ID
	m.sendFrame(client, ack)

	sender := frame.Sender
	if sender == "" {
		sender = client.BuyerID
	}

	result, err := negotiator.HandleMessage(context.Background(), sender, frame.Text)
	if err != nil {
		log.Printf("Chat transport: turn failed for %s: %v", sender, err)
		m.sendFrame(client, newFrame(FrameTypeError))
		return
	}

	reply := newFrame(FrameTypeReply)
	reply.AckID = frame.ID
	reply.Text = result.MessageToBuyer
	m.sendFrame(client, reply)
}

func (m *Manager) sendFrame(client *Client, frame Frame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}

	select {
	case client.Send <- payload:
	default:
		log.Printf("Chat transport: dropping frame for %s, send buffer full", client.BuyerID)
	}
}

// ReadPump reads frames from the connection until it closes.
func (c *Client) ReadPump(m *Manager, negotiator Negotiator) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Chat transport read error: %v", err)
			}
			break
		}
		m.HandleInbound(c, negotiator, message)
	}
}

// WritePump drains the send channel into the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
