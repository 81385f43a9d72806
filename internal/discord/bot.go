// Package discord is the transport layer: it converts gateway events
// into inbound messages for the router and delivers the outbound
// action (reply, DM, reaction) back to the channel.
package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/abg-tutor/internal/mind"
)

const (
	messageLimit  = 2000
	handleTimeout = 30 * time.Second
)

type Bot struct {
	session *discordgo.Session
	router  *mind.Router
}

func New(token string, router *mind.Router) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	b := &Bot{session: session, router: router}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	return b, nil
}

// Start opens the gateway connection and blocks until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	<-ctx.Done()
	return b.session.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] logged in as %s#%s", r.User.Username, r.User.Discriminator)
}

// onMessageCreate hands each message to the router on its own
// goroutine so one user's pending backend call never blocks another's.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	var mentioned bool
	for _, u := range m.Mentions {
		if s.State.User != nil && u.ID == s.State.User.ID {
			mentioned = true
			break
		}
	}

	in := mind.Inbound{
		SenderID:  m.Author.ID,
		Text:      strings.TrimSpace(b.stripMentions(m.Content)),
		IsDM:      m.GuildID == "",
		Mentioned: mentioned,
	}

	go b.respond(m, in)
}

func (b *Bot) respond(m *discordgo.MessageCreate, in mind.Inbound) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	stopTyping := b.keepTyping(m.ChannelID)
	out := b.router.Handle(ctx, in)
	stopTyping()

	if out == nil {
		return
	}

	if out.Reaction != "" {
		if err := b.session.MessageReactionAdd(m.ChannelID, m.ID, out.Reaction); err != nil {
			log.Printf("[WARN] add reaction: %v", err)
		}
	}
	if out.Text == "" {
		return
	}

	for _, chunk := range splitMessage(out.Text, messageLimit) {
		var err error
		if in.IsDM {
			_, err = b.session.ChannelMessageSend(m.ChannelID, chunk)
		} else {
			_, err = b.session.ChannelMessageSendReply(m.ChannelID, chunk, m.Reference())
		}
		if err != nil {
			log.Printf("[ERR] send message: %v", err)
			return
		}
	}
}

// keepTyping shows the typing indicator until the returned stop func
// is called. The indicator expires server-side after ~10s, so refresh.
func (b *Bot) keepTyping(channelID string) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(8 * time.Second)
		defer ticker.Stop()
		_ = b.session.ChannelTyping(channelID)
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = b.session.ChannelTyping(channelID)
			}
		}
	}()
	return func() { close(done) }
}

func (b *Bot) stripMentions(content string) string {
	if b.session.State.User == nil {
		return content
	}
	id := b.session.State.User.ID
	content = strings.ReplaceAll(content, "<@"+id+">", "")
	content = strings.ReplaceAll(content, "<@!"+id+">", "")
	return content
}

// splitMessage chunks text to the platform limit, preferring newline
// boundaries and hard-splitting oversized lines.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	for _, line := range strings.Split(text, "\n") {
		for len(line) > limit {
			if cur.Len() > 0 {
				chunks = append(chunks, cur.String())
				cur.Reset()
			}
			chunks = append(chunks, line[:limit])
			line = line[limit:]
		}
		if cur.Len()+len(line)+1 > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n")
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
