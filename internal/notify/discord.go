package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mrzero/lootstock/pkg/clients"
)

const (
	botName   = "LootStock Bot"
	queueSize = 64

	colorBlue   = 0x3498db
	colorGreen  = 0x2ecc71
	colorYellow = 0xf1c40f
)

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
	Footer      *embedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds,omitempty"`
}

type HTTPClientI interface {
	Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

// Discord posts ledger events to a webhook as embeds. Sends go through a
// buffered queue drained by one background worker, so a slow or failing
// webhook never blocks a ledger write. With an empty URL every notify call
// is a no-op.
type Discord struct {
	url    string
	client HTTPClientI
	queue  chan webhookPayload
}

func NewDiscord(url string, client *clients.HTTPClient) *Discord {
	if client == nil {
		client = clients.NewHTTPClient()
	}
	return &Discord{
		url:    url,
		client: client,
		queue:  make(chan webhookPayload, queueSize),
	}
}

// Start drains the queue until ctx is canceled.
func (d *Discord) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case payload := <-d.queue:
				d.send(payload)
			}
		}
	}()
}

func (d *Discord) send(payload webhookPayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("can't marshal webhook payload", zap.Error(err))
		return
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	status, _, err := d.client.Post(d.url, headers, body)
	if err != nil {
		zap.L().Error("can't send discord webhook", zap.Error(err))
		return
	}
	if status >= http.StatusBadRequest {
		zap.L().Error("discord webhook rejected", zap.Int("status", status))
	}
}

func (d *Discord) enqueue(payload webhookPayload) {
	if d.url == "" {
		return
	}
	select {
	case d.queue <- payload:
	default:
		zap.L().Warn("notification queue full, dropping webhook")
	}
}

func (d *Discord) NotifyNewDrop(itemName string, bossName *string) {
	boss := "Unknown"
	if bossName != nil {
		boss = *bossName
	}
	d.enqueue(webhookPayload{
		Username: botName,
		Embeds: []embed{{
			Title:       "💎 New Drop Received!",
			Description: "**" + itemName + "** has dropped!",
			Color:       colorBlue,
			Fields: []embedField{
				{Name: "Item", Value: itemName, Inline: true},
				{Name: "Boss", Value: boss, Inline: true},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *Discord) NotifySale(itemName string, price, netAmount float64) {
	d.enqueue(webhookPayload{
		Username: botName,
		Embeds: []embed{{
			Title:       "💰 Item Sold!",
			Description: "**" + itemName + "** has been sold.",
			Color:       colorGreen,
			Fields: []embedField{
				{Name: "Item", Value: itemName, Inline: true},
				{Name: "Sale Price", Value: formatAmount(price), Inline: true},
				{Name: "Net Amount", Value: formatAmount(netAmount), Inline: true},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *Discord) NotifyDividend(itemName string, amountPerPerson float64, recipients int) {
	d.enqueue(webhookPayload{
		Username: botName,
		Embeds: []embed{{
			Title:       "💸 Dividend Distributed!",
			Description: "Profits from **" + itemName + "** have been split.",
			Color:       colorYellow,
			Fields: []embedField{
				{Name: "Amount Per Person", Value: formatAmount(amountPerPerson), Inline: true},
				{Name: "Total Recipients", Value: strconv.Itoa(recipients) + " members", Inline: true},
			},
			Footer:    &embedFooter{Text: "Check your dashboard for details."},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + " THB"
}
