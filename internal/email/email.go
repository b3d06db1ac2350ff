package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/explorex/reservations/internal/kafka"
)

// Sender delivers reservation alert emails over authenticated SMTP on an
// implicit-TLS port.
type Sender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSender(host string, port int, username, password, from string) *Sender {
	return &Sender{host: host, port: port, username: username, password: password, from: from}
}

// Send renders the alert for a reservation event and delivers it. Callers
// treat failures as log-and-continue; nothing here blocks a reservation
// write.
func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	if event.To == "" {
		return fmt.Errorf("event %s has no recipient", event.ID)
	}

	subject := "New Reservation Alert"
	if event.Type == kafka.EventPassengerManifest {
		subject = "Passenger Update"
	}

	body, err := renderBody(event)
	if err != nil {
		return fmt.Errorf("render alert body: %w", err)
	}

	msg := buildMessage(s.from, event.To, subject, body)
	return s.deliver(ctx, event.To, msg)
}

func (s *Sender) deliver(ctx context.Context, to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	dialer := &tls.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func buildMessage(from, to, subject string, body []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.Write(body)
	return buf.Bytes()
}

var alertTemplate = template.Must(template.New("alert").Funcs(template.FuncMap{
	"formatDate": formatDate,
	"inc":        func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Reservation Alert</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4;">
<div style="max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px;">
  <div style="background-color: #f39c12; color: white; text-align: center; padding: 20px; font-size: 24px;">Reservation Alert</div>
  <div style="padding: 20px;">
{{- if eq .Type "passenger_manifest"}}
    <h1>Passenger Information</h1>
    <p>Here are the details of the passengers:</p>
    <ul style="list-style-type: none; padding: 0;">
{{- range $i, $p := .Passengers}}
      <li>
        <h2>Passenger #{{inc $i}}</h2>
        <table border="1" cellpadding="10" cellspacing="0" style="border-collapse: collapse; width: 100%;">
          <tr><td><strong>Type:</strong><br>{{$p.Type}}</td><td colspan="2"><strong>Name:</strong><br>{{$p.FirstName}} {{$p.LastName}}</td></tr>
          <tr><td><strong>Birth date:</strong><br>{{formatDate $p.BirthDate}}</td><td><strong>Gender:</strong><br>{{$p.Gender}}</td><td><strong>Nationality:</strong><br>{{$p.Nationality}}</td></tr>
        </table>
      </li>
{{- end}}
    </ul>
{{- else}}
    <h1>New Reservation Created</h1>
    <p>A new reservation has been created with the following details:</p>
{{- with .Reservation}}
    <table border="1" cellpadding="10" cellspacing="0" style="border-collapse: collapse; width: 100%;">
      <tr><td colspan="2"><strong>Name:</strong> {{.FirstName}} {{.LastName}}</td></tr>
      <tr><td><strong>Email:</strong> {{.Email}}</td><td><strong>Phone:</strong> {{.Phone}}</td></tr>
      <tr><td><strong>Origin:</strong> {{.Origin}}</td><td><strong>Destination:</strong> {{.Destination}}</td></tr>
      <tr><td><strong>Departure Date:</strong> {{formatDate .DepartureDate}}</td><td><strong>Number of Days:</strong> {{.NumberDays}}</td></tr>
      <tr><td colspan="2"><strong>Travel Type:</strong> {{.TypeTravel}}</td></tr>
      <tr><td><strong>Children Count:</strong> {{.ChildrenCount}}</td><td><strong>Adults Count:</strong> {{.AdultsCount}}</td></tr>
      <tr><td colspan="2"><strong>Approximate Budget:</strong> ${{.AproximateBudget}}</td></tr>
      <tr><td colspan="2"><strong>Message:</strong> {{.Message}}</td></tr>
    </table>
{{- end}}
{{- end}}
  </div>
  <div style="background-color: #f39c12; color: white; text-align: center; padding: 10px; font-size: 14px;">&copy; Group Explorex. All rights reserved.</div>
</div>
</body>
</html>`))

func renderBody(event kafka.ReservationEvent) ([]byte, error) {
	var buf bytes.Buffer
	if err := alertTemplate.Execute(&buf, event); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatDate renders stored dates as MM/DD/YYYY; anything unparseable
// passes through untouched.
func formatDate(date string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("01/02/2006")
		}
	}
	return date
}
