package mind

import "strings"

// Pure text classifiers. All of them take the raw message, lowercase it
// themselves, and return safe defaults on empty input.

// shortTokenWhitelist holds short interjections that look like
// keyboard noise but are legitimate chat.
var shortTokenWhitelist = map[string]bool{
	"lol": true, "lmao": true, "lmaoo": true, "k": true, "kk": true,
	"ok": true, "okay": true, "fr": true, "ty": true, "np": true,
	"gn": true, "gm": true, "ngl": true, "tbh": true, "idk": true,
	"nm": true, "wyd": true, "btw": true, "omg": true, "smh": true,
	"yw": true, "hm": true, "hmm": true, "brb": true, "wsg": true,
	"ikr": true, "ily": true, "yo": true, "sup": true, "rn": true,
	"stfu": true, "wtf": true, "tysm": true, "fml": true, "hbu": true,
}

// gibberishBlacklist holds known test-typing patterns, matched exactly.
var gibberishBlacklist = map[string]bool{
	"asdf": true, "asd": true, "sdf": true, "asdfg": true, "asdfgh": true,
	"qwer": true, "qwerty": true,
	"zxcv": true, "zxcvbn": true, "test": true, "testing": true,
	"123": true, "1234": true, "12345": true, "abc": true, "aaa": true,
}

// IsGibberish applies, in order: whitelist, blacklist, then three
// structural rules (short no-vowel, low vowel ratio, keyboard repeat).
func IsGibberish(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	if shortTokenWhitelist[t] {
		return false
	}
	if gibberishBlacklist[t] {
		return true
	}

	runes := []rune(t)
	n := len(runes)
	var vowels, digits int
	distinct := make(map[rune]bool, n)
	for _, r := range runes {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		}
		if r >= '0' && r <= '9' {
			digits++
		}
		if r != ' ' {
			distinct[r] = true
		}
	}

	if n <= 3 && vowels == 0 && digits != n {
		return true
	}
	if n >= 4 && float64(vowels)/float64(n) < 0.15 {
		return true
	}
	if n >= 5 && len(distinct) <= 2 {
		return true
	}
	return false
}

var highStressWords = []string{
	"stressed", "overwhelmed", "anxious", "freaking out", "panicking",
	"so much", "can't handle", "cant handle",
}

var mediumStressWords = []string{
	"worried", "nervous", "concerned", "struggling", "difficult",
}

var lowStressWords = []string{
	"fine", "good", "okay", "confident", "ready",
}

// DetectStress returns the strongest stress level mentioned; high beats
// medium beats low. ok is false when nothing matched.
func DetectStress(text string) (StressLevel, bool) {
	lowered := strings.ToLower(text)
	if containsAny(lowered, highStressWords) {
		return StressHigh, true
	}
	if containsAny(lowered, mediumStressWords) {
		return StressMedium, true
	}
	if containsAny(lowered, lowStressWords) {
		return StressLow, true
	}
	return "", false
}

// subjectTriggers maps trigger phrases to canonical subject labels.
// Ordered so detection output is deterministic.
var subjectTriggers = []struct {
	trigger string
	subject string
}{
	{"apush", "AP US History"},
	{"ap us history", "AP US History"},
	{"ap bio", "AP Biology"},
	{"ap biology", "AP Biology"},
	{"ap chem", "AP Chemistry"},
	{"ap chemistry", "AP Chemistry"},
	{"ap calc", "AP Calculus"},
	{"calculus", "Calculus"},
	{"calc", "Calculus"},
	{"ap psych", "AP Psychology"},
	{"ap psychology", "AP Psychology"},
	{"ap physics", "AP Physics"},
	{"ap lang", "AP English Language"},
	{"ap lit", "AP English Literature"},
	{"ap world", "AP World History"},
	{"ap euro", "AP European History"},
	{"ap stats", "AP Statistics"},
	{"ap gov", "AP Government"},
}

// DetectSubjects returns every canonical subject the text mentions,
// de-duplicated, in trigger-table order.
func DetectSubjects(text string) []string {
	lowered := strings.ToLower(text)
	var out []string
	seen := make(map[string]bool)
	for _, st := range subjectTriggers {
		if strings.Contains(lowered, st.trigger) && !seen[st.subject] {
			seen[st.subject] = true
			out = append(out, st.subject)
		}
	}
	return out
}

// domainRules pick a single best domain for prompt hints. First match
// wins; order is therefore part of the contract.
var domainRules = []struct {
	keywords []string
	domain   string
}{
	{[]string{"spanish", "french", "chinese", "grammar", "vocab", "ap lang", "ap lit", "essay", "english"}, "language"},
	{[]string{"calc", "calculus", "derivative", "integral", "precalc", "limit"}, "calculus"},
	{[]string{"chem", "chemistry", "mole", "stoichiometry"}, "chemistry"},
	{[]string{"physics", "velocity", "momentum", "kinematics"}, "physics"},
	{[]string{"bio", "biology", "cell", "photosynthesis", "dna"}, "biology"},
	{[]string{"history", "apush", "ap euro", "ap world", "ap gov"}, "history"},
	{[]string{"stats", "statistics", "probability"}, "statistics"},
	{[]string{"psych", "psychology"}, "psychology"},
	{[]string{"computer science", "coding", "programming", "apcs"}, "computer science"},
	{[]string{"sat", "act"}, "test prep"},
}

// DetectDomain returns the single best-matching subject domain, or
// "general" when nothing matches.
func DetectDomain(text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range domainRules {
		if containsAny(lowered, rule.keywords) {
			return rule.domain
		}
	}
	return "general"
}

var teachingRequestWords = []string{
	"teach me", "explain", "walk me through", "how does", "how do i",
	"help me understand", "step by step", "tutor me", "can you show me",
	"what is the difference between", "why does",
}

// IsTeachingRequest reports whether the user asked for an actual
// explanation. The transition it drives is one-directional.
func IsTeachingRequest(text string) bool {
	return containsAny(strings.ToLower(text), teachingRequestWords)
}

var botAccusationPhrases = []string{
	"are you a bot", "are you ai", "are u a bot", "r u a bot",
	"you a bot", "ur a bot", "you're a bot", "youre a bot",
	"are you real", "are you human",
}

var insultWords = []string{
	"stupid", "dumb", "useless", "trash", "garbage", "pathetic",
	"worthless", "hate you", "hate u", "you suck", "u suck",
}

var aggressivePatterns = []string{
	"stfu", "shut up", "fuck off", "fuck you", "fuck u", "go away",
	"nobody asked", "leave me alone", "piss off",
}

// WantsAnnoyed decides whether the annoyed tone is forced. A bot
// accusation or an aggressive pattern is enough on its own; insult
// keywords additionally need strongly negative sentiment.
func WantsAnnoyed(text string, sentiment float64) bool {
	lowered := strings.ToLower(text)
	if containsAny(lowered, botAccusationPhrases) {
		return true
	}
	if containsAny(lowered, aggressivePatterns) {
		return true
	}
	if containsAny(lowered, insultWords) && sentiment < InsultSentimentThreshold {
		return true
	}
	return false
}

func containsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
