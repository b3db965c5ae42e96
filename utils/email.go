package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

// OrderEmailItem is one line of the confirmation mail.
type OrderEmailItem struct {
	Name  string
	Qty   int
	Price float64
}

// SendOrderConfirmation emails a receipt for a recorded order. Failures
// are the caller's to log; a lost email never fails the order itself.
func SendOrderConfirmation(to, orderID string, total float64, items []OrderEmailItem) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" || to == "" {
		// Email is optional in development setups.
		return nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "orders@hagiaesthetics.com"
	}

	var lines strings.Builder
	for _, item := range items {
		lines.WriteString(fmt.Sprintf("<li>%s × %d — $%.2f</li>", item.Name, item.Qty, item.Price))
	}

	body := fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>Order ID: <strong>%s</strong></p>
		<p>Total: <strong>$%.2f</strong></p>
		<p>Items:</p>
		<ul>%s</ul>
		<p>We will notify you when your order ships.</p>
	`, orderID, total, lines.String())

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Your Hagi Aesthetics Order #%s", orderID))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send order confirmation: %v", err)
	}
	return nil
}
