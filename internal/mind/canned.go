package mind

import (
	"fmt"
	"strings"
)

// Canned reply tables and the ordered matcher chain. The chain runs
// before any backend call so common small talk stays instant and free.

var goodbyeReplies = []string{
	"bye! good luck with your studies! 💕",
	"see you! come back if you need help 😊",
	"later! happy studying ❤️",
	"goodbye! you got this! 💪",
	"peace out! good luck 🫶",
}

var gibberishReplies = []string{
	"bestie did your cat walk on the keyboard 😭",
	"uh... translate that for me? 💀",
	"that's not a word but ok lol, whatcha need?",
	"keyboard smash hours i see 😌 what's actually up?",
	"i speak many languages but not that one 💀",
}

var gibberishRepliesFlirty = []string{
	"cutie that's not even a word 😭💕",
	"babe did u fall asleep on the keyboard 💞",
	"keyboard smash?? ok but say it with words for me 🥺💖",
	"lol smartie try that again, i wanna actually understand u 💕",
}

// gibberishRepliesFor picks the deflection pool matching the tone the
// selector chose for this turn.
func gibberishRepliesFor(tone Tone) []string {
	if tone == ToneFlirty {
		return gibberishRepliesFlirty
	}
	return gibberishReplies
}

var botAccusationReplies = []string{
	"bro what 😭 do i look like a bot to u?",
	"stfu 💀 why would u even ask that omg",
	"nah that's crazy 😭 i'm literally right here",
	"pls i'm too real for this convo rn 💅",
	"lol ok bot detector relax 💀",
	"ugh why u tryna ruin the vibe 😭",
}

var personalityChangePhrases = []string{
	"be flirty", "be more flirty", "flirt with me", "talk flirty", "be romantic",
	"be nicer", "be meaner", "be sweeter", "be cuter", "change your tone",
	"talk different", "act different", "be more", "can you be", "please be",
	"i want you to be", "you should be", "try being", "start being",
}

var personalityChangeReplies = []string{
	"nah i just vibe how i vibe 😭",
	"that's not really how this works bestie 💀",
	"i talk how i talk fr, can't change that",
	"bro i'm just being me lol",
	"nah i'm good being myself 😌",
	"ugh i am who i am, take it or leave it 💅",
	"bestie this is just my personality 😭",
	"can't force it lol, i just do my thing",
}

var privilegedGreetings = []string{
	"hey cutie! 💕 miss me?",
	"hiii babe 💖 what's up?",
	"hey you 😊💞 how's my favorite person doing?",
	"yo! 💕 been thinking about our study sessions 😌",
	"hey smartie 💖 ready to crush it today?",
}

var morningGreetings = []string{
	"good morning! 💕 ready to crush today?",
	"morning! how are u feeling today? ☀️",
	"hey good morning! let's make today productive 😊",
}

var afternoonGreetings = []string{
	"heyyyy how's studying going this afternoon? 😭",
	"afternoon! what's on your study list today?",
	"hey! afternoon grind time? 💪",
}

var eveningGreetings = []string{
	"what's up night owl 😏 still grinding?",
	"hey! evening study sesh? 📚",
	"yo! how's your night going?",
}

var lateNightGreetings = []string{
	"ugh why are we up this late 😭 let's at least do something productive lol",
	"bestie it's so late 💀 but i'm here for u",
	"late night gang! what are we studying? 🌙",
}

var nothingReplies = []string{
	"fair enough lol, just vibing then?",
	"same tbh 😭 wanna check out some study stuff? type `!help`",
	"relatable, lmk if you need help with school stuff",
	"all good! i'm here if you need anything 💕",
	"vibing is valid ngl",
}

var nothingRepliesPrivileged = []string{
	"just wanna hang out then? 💕 i'm here for u",
	"that's ok babe, we can just vibe together 💖",
	"no worries cutie, i like talking to you anyway 😊💞",
}

var loveRomanticReplies = []string{
	"aww of course 💕 you're one of my favorite people to help",
	"i mean yeah! you're literally awesome 🥺",
	"obviously 💖 helping you is my favorite thing fr",
	"duh! you're the best 😊💞",
	"for sure 💗 you make studying fun honestly",
	"yes 🥰 you're amazing and i'm always here for you",
}

var loveFriendlyReplies = []string{
	"yeah! you're a great person to help out",
	"for sure! helping you study is cool",
	"of course! you're awesome 😊",
	"yeah i think you're pretty cool!",
	"definitely! you're a good study buddy",
}

var procrastinationReplies = []string{
	"bruh stfu 😭 go touch grass before ur brain rots 💀",
	"ok genius 😌 maybe take a lil break and come back fresh?",
	"nah stop that 💀 let's get u back on track fr",
	"ugh i get it but like... maybe set a timer and grind for 25 mins?",
}

var badGradeReplies = []string{
	"awww dummy 😭 it's ok, we'll fix it next time 💖",
	"nah one bad grade doesn't define u bestie 💕",
	"ugh that sucks but you're gonna bounce back fr 💪",
	"listen babe it happens, let's focus on the next one 💖",
}

var goodGradeReplies = []string{
	"omg proud of u cutie 😳💞 you crushed it!",
	"yesss!! i knew you could do it! 💖",
	"that's what i'm talking about! 🔥",
	"see?? i told u you got this 💕",
}

var crammingReplies = []string{
	"ok genius 😭 let's make this 2-hour grind count 💀",
	"ngl this is stressful but we got this 💪",
	"alright night owl let's do this efficiently at least 📚",
}

var motivationReplies = []string{
	"listen babe 💕 u got this, i literally believe in ur brain 💖",
	"nah stop that rn 😭 you're literally capable of so much",
	"ugh don't make me give u a pep talk 💀 you're amazing fr",
	"bestie you've come this far, don't give up now 💪💕",
}

var howAreYouReplies = []string{
	"i'm good! just here to help with your studies 💕",
	"doing great! ready to help you ace those tests",
	"pretty good! what about you?",
	"chilling! you need help with anything?",
	"i'm vibing lol, how are you?",
}

var howAreYouRepliesPrivileged = []string{
	"i'm good! better now that you're here 💕",
	"doing great babe! just thinking about helping you 💖",
	"pretty good cutie! what about you? 😊",
	"chilling, but i'd rather be studying with you 💞",
	"i'm vibing! lowkey missed talking to you 💕",
}

var feelingGoodReplies = []string{
	"that's good to hear! 😊",
	"glad you're doing well!",
	"nice! lmk if you need anything",
	"awesome! i'm here if you need help 💕",
	"bet! happy to help if you need it",
}

var feelingGoodRepliesPrivileged = []string{
	"glad you're doing good cutie! 💕",
	"love that for you babe 💖",
	"yess that's what i like to hear! 😊💞",
	"happy when you're happy 💕",
}

var feelingBadReplies = []string{
	"aw sorry to hear that 😭 need help with anything?",
	"that sucks :( i'm here if you need study help",
	"hope things get better! need any study resources?",
	"sending good vibes your way 💕 need help with school stuff?",
	"ugh that sounds rough, i'm here for you tho",
}

var feelingBadRepliesPrivileged = []string{
	"aw babe 😭 come here, let me help you feel better 💕",
	"nooo cutie :( wanna talk about it? i'm here for you 💖",
	"ugh i hate seeing you stressed 😭 let me help you 💞",
	"sending you all the good vibes rn 💕 what can i do?",
}

var schoolworkReplies = []string{
	"need help studying? type `!help` to see all my resources!",
	"i got tons of study resources! use `!help` to see what i cover",
	"studying for something? check out `!help` for all my AP and test prep stuff",
	"got a test coming up? type `!help` to find resources",
}

var thanksReplies = []string{
	"no problem! 💕",
	"anytime!",
	"you're welcome! 😊",
	"happy to help!",
	"of course!",
	"np! ❤️",
}

var thanksRepliesPrivileged = []string{
	"no problem babe! 💕",
	"anytime cutie! 💖",
	"of course! anything for you 💞",
	"you're so sweet 🥺 happy to help!",
}

var fallbackReplies = []string{
	"hmm not sure what you mean fr 😭 need study help? type `!help`",
	"i didn't quite get that lol, type `!help` to see what i can do!",
	"sorry i'm better with study stuff 💀 try `!help` to see my resources",
	"not sure how to respond to that ngl, wanna see study resources? type `!help`",
	"hm i'm a bit confused tbh, type `!help` for study stuff!",
}

var greetingWords = []string{
	"hi", "hey", "hello", "sup", "yo", "wassup", "what's up", "howdy", "hii", "heyy",
}

var nothingPhrases = []string{
	"nothing's going on", "nothings going on", "nothing", "not much", "nm",
	"nothin", "nada", "idk", "i dont know", "i don't know", "dunno", "i dunno",
}

var lovePhrases = []string{
	"do you love me", "do u love me", "do you luv me", "do u luv me",
	"do you like me", "do u like me", "you love me", "u love me",
}

var preparedPhrases = []string{
	"how prepared am i", "am i prepared", "how ready am i", "am i ready", "how prepped am i",
}

var cookedPhrases = []string{
	"how cooked am i", "am i cooked", "how screwed am i", "am i screwed",
	"how dead am i", "am i dead", "how fucked am i", "am i fucked",
}

var procrastinationPhrases = []string{
	"procrastinating", "procrastinate", "wasting time", "not studying", "avoiding", "putting off",
}

var badGradePhrases = []string{
	"failed", "fail", "did bad", "bombed", "terrible grade",
}

var goodGradePhrases = []string{
	"got an a", "got a b", "did well", "passed", "aced",
}

var crammingPhrases = []string{
	"cramming", "last minute", "2 hours", "all night", "overnight",
}

var motivationPhrases = []string{
	"motivate me", "motivation", "can't do this", "give up", "i suck",
}

var howAreYouPhrases = []string{
	"how are you", "how r u", "hows it going", "how you doing", "wyd",
}

var feelingGoodWords = []string{
	"good", "fine", "great", "awesome", "nice", "cool", "amazing",
}

var feelingBadWords = []string{
	"bad", "not good", "terrible", "awful", "struggling", "stressed",
	"overwhelmed", "tired", "exhausted",
}

var schoolworkWords = []string{
	"homework", "test", "exam", "quiz", "study", "studying", "essay",
	"assignment", "project",
}

var thanksWords = []string{
	"thanks", "thank you", "thx", "ty", "appreciate",
}

// complimentPhrases trigger the reaction-plus-reply path for name
// mentions outside a session.
var complimentPhrases = []string{
	"i like abg tutor", "i love abg tutor", "love abg tutor", "i luv abg tutor",
	"luv abg tutor", "love u abg tutor", "ily abg tutor", "abg tutor ily",
	"i <3 abg tutor", "abg tutor <3", "i love you abg tutor",
	"abg tutor is great", "abg tutor is cool", "abg tutor is the best",
	"abg tutor is amazing", "abg tutor is awesome", "abg tutor is so good",
	"abg tutor is fire", "abg tutor is goated", "abg tutor is elite",
	"abg tutor so good", "abg tutor really good", "abg tutor too good",
	"abg tutor goated", "abg tutor the goat", "abg tutor goat",
	"abg tutor w", "w abg tutor", "abg tutor is a w",
	"abg tutor good", "abg tutor best", "abg tutor fire", "abg tutor cool",
	"thank you abg tutor", "thanks abg tutor", "ty abg tutor", "thx abg tutor",
	"abg tutor clutch", "abg tutor carrying", "abg tutor saved me",
}

var romanticReactions = []string{"❤️", "💕", "💖", "💗", "💓", "💞", "💝", "🥰", "😍", "🥹", "😳", "🦋"}

var friendlyReactions = []string{"👍", "💯", "🔥", "✨", "🙌", "🤝", "😎", "💪", "⭐", "🎉", "👊", "🫡"}

var romanticComplimentReplies = []string{
	"you're making me blush stopppp 💕",
	"why am i blushing at my screen rn 😳",
	"you're too sweet i'm melting 💕",
}

var friendlyComplimentReplies = []string{
	"aw thanks! you're awesome! ✨",
	"appreciate you fr 💙",
	"you're too kind! 😇",
}

// isCompliment matches compliment phrases on word boundaries so
// "abg tutor w" can't fire inside "abg tutor what...".
func isCompliment(lowered string) bool {
	for _, p := range complimentPhrases {
		if matchPhrase(lowered, p) {
			return true
		}
	}
	return false
}

func matchPhrase(lowered, phrase string) bool {
	for start := 0; start <= len(lowered)-len(phrase); {
		idx := strings.Index(lowered[start:], phrase)
		if idx < 0 {
			return false
		}
		i := start + idx
		j := i + len(phrase)
		beforeOK := i == 0 || !isWordChar(rune(lowered[i-1]))
		afterOK := j == len(lowered) || !isWordChar(rune(lowered[j]))
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
}

// complimentResponse picks a reaction emoji and a reply; privileged
// users always get the romantic set, everyone else rarely does.
func (r *Router) complimentResponse(userID string) (reaction, reply string) {
	if IsPrivileged(userID) || r.randFloat() < 0.2 {
		return r.pick(romanticReactions), r.pick(romanticComplimentReplies)
	}
	return r.pick(friendlyReactions), r.pick(friendlyComplimentReplies)
}

// cannedReply walks the matcher chain in order and returns the first
// hit. Side effects on memory (study habits) happen here because the
// phrasing that reveals them is what the matchers key on.
func (r *Router) cannedReply(userID, text string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	privileged := IsPrivileged(userID)

	switch {
	case matchAny(lowered, botAccusationPhrases):
		return r.pick(botAccusationReplies), true

	case matchAny(lowered, personalityChangePhrases):
		return r.pick(personalityChangeReplies), true

	case matchAny(lowered, greetingWords):
		if privileged {
			return r.pick(privilegedGreetings), true
		}
		if subjects := r.store.Memory(userID).Subjects; len(subjects) > 0 && r.randFloat() < 0.3 {
			subject := subjects[r.randInt(len(subjects))]
			return r.pick([]string{
				fmt.Sprintf("hey! how's %s going? 💕", subject),
				fmt.Sprintf("yo! still grinding on %s? 😊", subject),
				fmt.Sprintf("what's up! need help with %s today?", subject),
			}), true
		}
		return r.timeGreeting(), true

	case matchAny(lowered, nothingPhrases):
		if privileged {
			return r.pick(nothingRepliesPrivileged), true
		}
		return r.pick(nothingReplies), true

	case matchAny(lowered, lovePhrases):
		if privileged || r.randFloat() < 0.2 {
			return r.pick(loveRomanticReplies), true
		}
		return r.pick(loveFriendlyReplies), true

	case matchAny(lowered, preparedPhrases):
		score := r.randInt(10) + 1
		if subjects := r.store.Memory(userID).Subjects; len(subjects) > 0 {
			return fmt.Sprintf("for %s? honestly i'd say you're like a %d/10", subjects[0], score), true
		}
		return fmt.Sprintf("on a scale of 1-10, personally i'd say you're a %d", score), true

	case matchAny(lowered, cookedPhrases):
		score := r.randInt(10) + 1
		return r.pick([]string{
			fmt.Sprintf("on a scale of 1-10 you're cooked at like a %d 😭", score),
			fmt.Sprintf("honestly? probably %d out of 10 cooked ngl", score),
			fmt.Sprintf("real talk i'd put you at %d/10 on the cooked scale 💀", score),
			fmt.Sprintf("ngl you might be a solid %d/10 cooked but you can recover fr", score),
			fmt.Sprintf("cooked level? probably %d out of 10 but don't panic yet", score),
		}), true

	case matchAny(lowered, procrastinationPhrases):
		r.store.SetProcrastinates(userID)
		return r.pick(procrastinationReplies), true

	case matchAny(lowered, badGradePhrases):
		return r.pick(badGradeReplies), true

	case matchAny(lowered, goodGradePhrases):
		return r.pick(goodGradeReplies), true

	case matchAny(lowered, crammingPhrases):
		r.store.SetCrams(userID)
		return r.pick(crammingReplies), true

	case matchAny(lowered, motivationPhrases):
		return r.pick(motivationReplies), true

	case matchAny(lowered, howAreYouPhrases):
		if privileged {
			return r.pick(howAreYouRepliesPrivileged), true
		}
		return r.pick(howAreYouReplies), true

	case matchAny(lowered, feelingGoodWords):
		if privileged {
			return r.pick(feelingGoodRepliesPrivileged), true
		}
		return r.pick(feelingGoodReplies), true

	case matchAny(lowered, feelingBadWords):
		if privileged {
			return r.pick(feelingBadRepliesPrivileged), true
		}
		if subjects := r.store.Memory(userID).Subjects; len(subjects) > 0 && r.randFloat() < 0.4 {
			subject := subjects[r.randInt(len(subjects))]
			return fmt.Sprintf("aw sorry to hear that 😭 wanna do a lil %s review together?", subject), true
		}
		return r.pick(feelingBadReplies), true

	case matchAny(lowered, schoolworkWords):
		if subjects := r.store.Memory(userID).Subjects; len(subjects) > 0 && r.randFloat() < 0.3 {
			subject := subjects[r.randInt(len(subjects))]
			return fmt.Sprintf("need help with %s? or check out `!help` for all resources!", subject), true
		}
		return r.pick(schoolworkReplies), true

	case matchAny(lowered, thanksWords):
		if privileged {
			return r.pick(thanksRepliesPrivileged), true
		}
		return r.pick(thanksReplies), true
	}

	return "", false
}

func (r *Router) timeGreeting() string {
	hour := r.now().Hour()
	switch {
	case hour >= 6 && hour < 12:
		return r.pick(morningGreetings)
	case hour >= 12 && hour < 18:
		return r.pick(afternoonGreetings)
	case hour >= 18:
		return r.pick(eveningGreetings)
	default:
		return r.pick(lateNightGreetings)
	}
}

func (r *Router) pick(pool []string) string {
	return pool[r.randInt(len(pool))]
}

// matchAny mixes two matching modes: multi-word entries match as
// substrings, single words match as whole tokens so "hi" can't fire
// inside "this".
func matchAny(lowered string, entries []string) bool {
	var fields []string
	for _, entry := range entries {
		if strings.ContainsRune(entry, ' ') {
			if strings.Contains(lowered, entry) {
				return true
			}
			continue
		}
		if fields == nil {
			fields = tokenize(lowered)
		}
		for _, f := range fields {
			if f == entry {
				return true
			}
		}
	}
	return false
}

// tokenize splits on spaces and strips edge punctuation.
func tokenize(lowered string) []string {
	raw := strings.Fields(lowered)
	out := raw[:0]
	for _, f := range raw {
		f = strings.Trim(f, ".,!?;:\"'()")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
