package assistant

// Package assistant provides the canned keyword-matching chat responder.
// There is no model behind it; replies are fixed supportive texts chosen by
// keyword category, with a random generic reply as the fallback.

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/campuswell/cw-ui-api/internal/domain/model"
	"github.com/campuswell/cw-ui-api/internal/ports"
	"github.com/campuswell/cw-ui-api/internal/simnet"
)

const respondLatency = 1500 * time.Millisecond

// genericReplies is the fallback pool when no keyword category matches.
var genericReplies = []string{
	"I understand how you're feeling. It's completely normal to experience ups and downs. Would you like to talk more about what's on your mind?",
	"That sounds challenging. Remember that seeking help is a sign of strength, not weakness. What small step could you take today to feel a bit better?",
	"Thank you for sharing that with me. It takes courage to open up. Have you tried any relaxation techniques like deep breathing or meditation?",
	"I hear you, and your feelings are valid. Sometimes it helps to break big problems into smaller, manageable pieces. What's one thing you could focus on right now?",
	"It's great that you're reaching out for support. That shows real self-awareness. Have you considered talking to a counselor about this?",
	"I'm glad you feel comfortable sharing with me. Remember, this feeling is temporary and you have the strength to get through this. What usually helps you feel more grounded?",
	"That's a very human thing to experience. Sometimes our minds can be our own worst critics. What would you say to a friend who was going through the same thing?",
}

// keywordCategory pairs trigger substrings with their canned reply.
type keywordCategory struct {
	keywords []string
	reply    string
}

// categories are evaluated in order; the first match wins, so a message
// mentioning both anxiety and sleep gets the anxiety reply.
var categories = []keywordCategory{
	{
		keywords: []string{"anxious", "anxiety"},
		reply:    "I understand that anxiety can feel overwhelming. Try this: Take 5 deep breaths - inhale for 4 counts, hold for 4, exhale for 4. This can help activate your body's relaxation response. Would you like me to guide you through a longer breathing exercise?",
	},
	{
		keywords: []string{"depressed", "sad"},
		reply:    "I'm sorry you're feeling this way. Depression can make everything seem harder, but you're taking a positive step by reaching out. Small actions can make a difference - even just getting sunlight or taking a short walk can help. Are there any activities that usually bring you some joy?",
	},
	{
		keywords: []string{"stress", "overwhelmed"},
		reply:    "Feeling stressed is your mind and body's way of telling you something needs attention. Let's try to break things down: What's the most pressing thing on your mind right now? Sometimes tackling one thing at a time can make everything feel more manageable.",
	},
	{
		keywords: []string{"sleep", "tired"},
		reply:    "Sleep is so important for mental health. Poor sleep can affect mood, concentration, and stress levels. Have you tried establishing a bedtime routine? Things like limiting screen time before bed and keeping a consistent sleep schedule can really help.",
	},
	{
		keywords: []string{"thank you", "thanks"},
		reply:    "You're very welcome! I'm here to support you. Remember, taking care of your mental health is an ongoing journey, and you're doing great by being proactive about it. Is there anything else I can help you with today?",
	},
}

// suggestedStarters are conversation openers offered to students.
var suggestedStarters = []string{
	"I'm feeling overwhelmed with school work",
	"I've been having trouble sleeping lately",
	"I'm feeling anxious about upcoming exams",
	"I don't know how to manage my stress",
	"I'm feeling lonely and isolated",
	"I want to improve my mental health habits",
}

// Responder implements ports.Responder with canned keyword replies.
type Responder struct {
	delay simnet.Delay
	now   func() time.Time

	// randMu guards rand; one Responder serves all requests and rand.Rand
	// is not safe for concurrent use.
	randMu sync.Mutex
	rand   *rand.Rand
}

var _ ports.Responder = (*Responder)(nil)

// Options configures a Responder. Zero values give production behavior.
type Options struct {
	Delay simnet.Delay
	// Rand is the fallback-reply source; nil uses a time-seeded source.
	Rand *rand.Rand
	// Now is the message timestamp source; nil uses time.Now.
	Now func() time.Time
}

// New constructs a Responder.
func New(opts Options) *Responder {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Responder{delay: opts.Delay, rand: r, now: now}
}

// Respond returns the assistant reply for a user message.
func (a *Responder) Respond(ctx context.Context, message string) (model.ChatMessage, error) {
	if err := a.delay.Wait(ctx, respondLatency); err != nil {
		return model.ChatMessage{}, err
	}

	now := a.now()
	return model.ChatMessage{
		ID:        now.UnixMilli(),
		Message:   a.replyFor(message),
		Timestamp: now,
		Sender:    model.SenderAI,
	}, nil
}

// replyFor picks the reply for a message: first matching keyword category,
// else a uniform random generic reply.
func (a *Responder) replyFor(message string) string {
	lower := strings.ToLower(message)
	for _, cat := range categories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.reply
			}
		}
	}
	a.randMu.Lock()
	defer a.randMu.Unlock()
	return genericReplies[a.rand.Intn(len(genericReplies))]
}

// SuggestedStarters returns the fixed conversation openers.
func SuggestedStarters() []string {
	out := make([]string, len(suggestedStarters))
	copy(out, suggestedStarters)
	return out
}
