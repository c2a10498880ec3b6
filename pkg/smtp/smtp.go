package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/clubhub-app/clubhub/pkg/logger"
)

// Client is the outbound mail client.
type Client struct {
	dialer *gomail.Dialer
	from   string
	domain string
}

func NewClient(dialer *gomail.Dialer, from, domain string) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
		domain: domain,
	}
}

// SendMembershipApproved notifies a member that the club owner approved
// them. Delivery runs in the background; a failed send is logged and
// never surfaces to the approval that triggered it.
func (c *Client) SendMembershipApproved(to, firstName, clubName string) {
	msg := gomail.NewMessage()

	msg.SetHeader("Message-ID", generateMessageID(c.domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("You've been approved to join %s!", clubName))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour membership in %s has been approved. You can now register for the club's events.\n",
		firstName, clubName,
	))

	go func() {
		if err := c.dialer.DialAndSend(msg); err != nil {
			logger.Log.Errorf("failed to send membership approved email to %s: %v", to, err)
			return
		}
		logger.Log.Infof("membership approved email sent to %s", to)
	}()
}

func generateMessageID(domain string) string {
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}
