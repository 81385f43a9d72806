package mind

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/keshon/abg-tutor/internal/ai"
)

// Inbound is one message handed over by the transport.
type Inbound struct {
	SenderID  string
	Text      string
	IsDM      bool
	Mentioned bool
}

// Outbound is the single action taken for an inbound message. A nil
// Outbound means silent drop.
type Outbound struct {
	Text     string
	Reaction string
}

// SentimentScorer scores text in [-1, 1]. Failures are the scorer's
// problem; it must return 0 rather than an error.
type SentimentScorer interface {
	Score(text string) float64
}

// MathSolver turns arithmetic found in text into a "expr = result"
// hint, or reports there is nothing to solve.
type MathSolver interface {
	Solve(text string) (string, bool)
}

const (
	welcomeReply = "heyy i'm abg tutor! 💕 i help with APs, SAT, and ACT stuff. " +
		"type `!help` to see my resources, or say hi with my name to start a convo! 😊"

	sessionStartHint = "\n*(only starts a conversation when you mention abg tutor. type `goodbye` to end)*"

	oneOffHint = "\n*(say hi with my name or type `!chat` if you wanna keep talking 💕)*"

	limitNoticeReply = "yo heads up! 😭 we hit the daily ai limit so i'm using my backup brain rn. still here to help tho! 💕"

	timeoutFallbackReply = "my brain lagged fr 😭 say that again?"
)

// Router is the per-message state machine tying the store, the canned
// matchers, and the generative path together.
type Router struct {
	store     *Store
	gen       *Responder
	dec       *Decorator
	sentiment SentimentScorer
	solver    MathSolver

	now       func() time.Time
	randFloat func() float64
	randInt   func(n int) int
}

func NewRouter(store *Store, gen *Responder, sentiment SentimentScorer, solver MathSolver) *Router {
	return &Router{
		store:     store,
		gen:       gen,
		dec:       NewDecorator(),
		sentiment: sentiment,
		solver:    solver,
		now:       time.Now,
		randFloat: rand.Float64,
		randInt:   rand.Intn,
	}
}

// Handle routes one inbound message. Evaluated top to bottom, first
// match wins, at most one outbound action:
//
//  1. command interception
//  2. new-user welcome
//  3. active-session dispatch
//  4. conversation-start trigger
//  5. one-off name mention
//  6. silent drop (nil)
//
// Messages from the same user are serialized; stale sessions are
// evicted before any tone or mode decision.
func (r *Router) Handle(ctx context.Context, msg Inbound) *Outbound {
	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	unlock := r.store.LockUser(msg.SenderID)
	defer unlock()

	if r.store.EvictIfExpired(msg.SenderID) {
		log.Printf("[MIND] evicted stale session for %s", msg.SenderID)
	}

	if reply, ok := r.handleCommand(msg.SenderID, msg.Text); ok {
		// Commands count as being seen; a later message must hit
		// session dispatch, not the onboarding gate.
		r.store.MarkWelcomed(msg.SenderID)
		return &Outbound{Text: reply}
	}

	lowered := strings.ToLower(msg.Text)
	containsName := strings.Contains(lowered, BotName)

	if !r.store.Welcomed(msg.SenderID) && !r.store.HasActiveSession(msg.SenderID) {
		r.store.MarkWelcomed(msg.SenderID)
		if msg.IsDM || msg.Mentioned || containsName {
			return &Outbound{Text: welcomeReply}
		}
		// Seen now, but this message wasn't addressed to the bot.
		return nil
	}

	if r.store.HasActiveSession(msg.SenderID) {
		return r.converse(ctx, msg.SenderID, msg.Text)
	}

	if msg.IsDM || msg.Mentioned || isGreetingTrigger(lowered) {
		r.store.StartSession(msg.SenderID)
		text := strings.TrimSpace(stripBotName(msg.Text))
		if text == "" {
			text = "hi"
		}
		out := r.converse(ctx, msg.SenderID, text)
		if out != nil && out.Text != "" {
			out.Text += sessionStartHint
		}
		return out
	}

	if containsName {
		return r.oneOff(ctx, msg.SenderID, msg.Text, lowered)
	}

	return nil
}

// converse is the inside of an active session: memory side effects,
// plain-text goodbye, gibberish deflection, canned matchers, then the
// generative path.
func (r *Router) converse(ctx context.Context, userID, text string) *Outbound {
	r.store.Touch(userID)
	r.observe(userID, text)

	switch strings.ToLower(strings.TrimSpace(text)) {
	case "goodbye":
		r.store.EndSession(userID)
		return &Outbound{Text: r.pick(goodbyeReplies)}
	case "help":
		return &Outbound{Text: helpText}
	}

	// No generative call and no history mutation for keyboard noise.
	// The deflection still carries the user's current tone.
	if IsGibberish(text) {
		tone := r.store.SelectTone(userID, false)
		return &Outbound{Text: r.pick(gibberishRepliesFor(tone))}
	}

	if reply, ok := r.cannedReply(userID, text); ok {
		return &Outbound{Text: reply}
	}

	return &Outbound{Text: r.generateReply(ctx, userID, text, true)}
}

// oneOff answers a name mention outside a session: compliments get a
// reaction, everything else gets one canned/generative reply plus a
// hint, with no session and no history.
func (r *Router) oneOff(ctx context.Context, userID, text, lowered string) *Outbound {
	r.observe(userID, text)

	if isCompliment(lowered) {
		reaction, reply := r.complimentResponse(userID)
		return &Outbound{Text: reply, Reaction: reaction}
	}

	stripped := strings.TrimSpace(stripBotName(text))
	if stripped == "" {
		stripped = "hi"
	}

	var reply string
	if canned, ok := r.cannedReply(userID, stripped); ok {
		reply = canned
	} else {
		reply = r.generateReply(ctx, userID, stripped, false)
	}
	return &Outbound{Text: reply + oneOffHint}
}

// observe runs the passive classifiers that feed long-term memory.
func (r *Router) observe(userID, text string) {
	if subjects := DetectSubjects(text); len(subjects) > 0 {
		r.store.AddSubjects(userID, subjects)
	}
	if lvl, ok := DetectStress(text); ok {
		r.store.SetStress(userID, lvl)
	}
	if IsTeachingRequest(text) && r.store.HasActiveSession(userID) {
		r.store.SetTeaching(userID, true)
	}
}

// generateReply runs the full generative path for one message. When
// withHistory is false the reply is one-shot: nothing is read from or
// written to the rolling history.
func (r *Router) generateReply(ctx context.Context, userID, text string, withHistory bool) string {
	score := r.sentiment.Score(text)
	forcedAnnoyed := WantsAnnoyed(text, score)
	tone := r.store.SelectTone(userID, forcedAnnoyed)

	teaching := r.store.Session(userID).TeachingMode
	domain := DetectDomain(text)
	mathHint, _ := r.solver.Solve(text)

	system := BuildSystemPrompt(tone, teaching, r.store.Memory(userID), domain, mathHint)

	var history []Turn
	if withHistory {
		history = r.store.History(userID)
	}

	reply, fail := r.gen.Generate(ctx, ai.Request{
		Messages:    BuildMessages(system, history, text),
		MaxTokens:   maxTokens(teaching),
		Temperature: 0.8,
	})

	switch fail {
	case FailNone:
	case FailRateLimited:
		if r.gen.ConsumeLimitNotice() {
			return limitNoticeReply
		}
		return r.pick(fallbackReplies)
	case FailTimeout:
		return timeoutFallbackReply
	default:
		return r.pick(fallbackReplies)
	}

	reply = r.dec.Decorate(reply, tone)
	if withHistory {
		r.store.AppendExchange(userID, text, reply, historyCap(teaching))
		r.store.SetLastTone(userID, tone)
	}
	return reply
}

var greetingTriggerTokens = []string{
	"hi", "hii", "hiii", "hiiii", "hey", "heyy", "heyyy", "heyyyy",
	"hello", "helloo", "hellooo", "sup", "supp", "suppp", "wsup",
	"yo", "yoo", "yooo", "wassup", "what's up", "whats up", "what up",
	"howdy", "greetings", "how are you", "wsg", "heya", "hiya", "ayo",
	"hay", "hola", "morning", "good morning", "evening", "good evening",
	"afternoon", "good afternoon", "night", "good night", "gm", "gn",
}

// isGreetingTrigger matches "<greeting> abg tutor" and
// "abg tutor <greeting>" forms.
func isGreetingTrigger(lowered string) bool {
	if !strings.Contains(lowered, BotName) {
		return false
	}
	for _, tok := range greetingTriggerTokens {
		if strings.Contains(lowered, tok+" "+BotName) ||
			strings.Contains(lowered, BotName+" "+tok) {
			return true
		}
	}
	return false
}

// stripBotName removes every case-insensitive occurrence of the bot
// name so the remainder can be treated as the actual message.
func stripBotName(text string) string {
	for {
		idx := strings.Index(strings.ToLower(text), BotName)
		if idx < 0 {
			return text
		}
		text = text[:idx] + text[idx+len(BotName):]
	}
}
