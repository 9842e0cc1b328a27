package services

import (
	"errors"
	"strings"
)

// ErrMissingMessage is returned when a chat request carries no message text.
var ErrMissingMessage = errors.New("message is required")

type ChatInput struct {
	Role     string `json:"role"`
	Message  string `json:"message"`
	BranchID string `json:"branchId"`
	Page     string `json:"page"`
}

// ChatReply echoes the request context back alongside the canned reply.
// BranchID and Page marshal as null when the request carried none.
type ChatReply struct {
	Reply    string  `json:"reply"`
	Role     string  `json:"role"`
	BranchID *string `json:"branchId"`
	Page     *string `json:"page"`
}

const (
	replyMenu      = "Here is a quick view of today's menu highlights: Jollof Rice, Grilled Chicken, Suya Platter, Garden Salad, Tropical Smoothie and Buttermilk Waffles. You can tap items in the menu panel to add them to your order."
	replyHours     = "Branches typically operate from 11:00 to 23:00. For exact hours, please confirm with the specific branch; this demo focuses on the digital ordering and analytics experience."
	replyStatus    = `You can see live order status in the Ordering page under "Real-Time Order Status", and in the Kitchen dashboard where staff advance orders from Received to Served.`
	replyAnalytics = "The Head Office dashboard compares branch revenue, visualizes peak hours, tracks best-selling items per branch and summarizes customer behavior such as dine-in vs takeaway and repeat customers."
	replyStaff     = "As branch staff you can use the Kitchen dashboard to view incoming orders, update their status and monitor daily performance metrics for your location."
	replyAdmin     = "As head-office, use the analytics dashboard to compare branches, monitor hourly performance and understand product and customer trends across your restaurant estate."
	replyDefault   = "I can help you navigate The Promise platform. You can ask about placing an order, viewing your order status, understanding how branches are compared, or what analytics are available."
)

// ResolveChatReply maps a message to a canned reply by substring matching
// against keyword groups in fixed precedence, then by role, then a generic
// fallback. The first matching rule wins.
func ResolveChatReply(input ChatInput) (ChatReply, error) {
	if input.Message == "" {
		return ChatReply{}, ErrMissingMessage
	}

	msg := strings.ToLower(input.Message)

	var reply string
	switch {
	case strings.Contains(msg, "menu") || strings.Contains(msg, "food"):
		reply = replyMenu
	case strings.Contains(msg, "open") || strings.Contains(msg, "time"):
		reply = replyHours
	case strings.Contains(msg, "order") && strings.Contains(msg, "status"):
		reply = replyStatus
	case strings.Contains(msg, "analytics") || strings.Contains(msg, "report"):
		reply = replyAnalytics
	case input.Role == "staff":
		reply = replyStaff
	case input.Role == "admin":
		reply = replyAdmin
	default:
		reply = replyDefault
	}

	out := ChatReply{
		Reply: reply,
		Role:  "assistant",
	}
	if input.BranchID != "" {
		out.BranchID = &input.BranchID
	}
	if input.Page != "" {
		out.Page = &input.Page
	}
	return out, nil
}
