package bootstrap

import (
	"academy/internal/domain/auth"
	"academy/internal/domain/chat"
	"academy/internal/domain/club"
	"academy/internal/domain/event"
	"academy/internal/domain/lead"
	"academy/internal/domain/membership"
	"academy/internal/domain/news"
	"academy/internal/domain/payment"
	"academy/internal/domain/shop"
	"academy/internal/domain/sitecontent"
	"academy/internal/domain/wall"
)

// Models lists every persisted entity in migration order.
func Models() []any {
	return []any{
		&auth.User{},
		&club.Club{},
		&news.Article{},
		&event.Event{},
		&event.Registration{},
		&lead.Lead{},
		&membership.Application{},
		&chat.Conversation{},
		&chat.Message{},
		&wall.Post{},
		&wall.Comment{},
		&wall.Reaction{},
		&shop.Product{},
		&shop.Order{},
		&shop.OrderItem{},
		&payment.Transaction{},
		&sitecontent.Document{},
	}
}
