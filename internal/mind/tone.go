package mind

// IsPrivileged reports whether userID is the one identity with a
// deterministic tone override. The single predicate for all call sites.
func IsPrivileged(userID string) bool {
	return userID == PrivilegedUserID
}

// SelectTone picks the tone for this message. Precedence:
//
//  1. forcedAnnoyed wins over everything, privileged identity included.
//  2. The privileged identity always gets the flirty tone.
//  3. Anti-repetition: if the last reply already used the rare tone,
//     force bestie this turn and clear the record so it can fire again.
//  4. Users in flirty mode pass a FlirtyToneChance gate per message;
//     everyone else is bestie.
func (s *Store) SelectTone(userID string, forcedAnnoyed bool) Tone {
	if forcedAnnoyed {
		return ToneAnnoyed
	}
	if IsPrivileged(userID) {
		return ToneFlirty
	}

	if last, ok := s.LastTone(userID); ok && last == ToneFlirty {
		s.ClearLastTone(userID)
		return ToneBestie
	}

	if s.Session(userID).Mode == ModeFlirty && s.randFloat() < FlirtyToneChance {
		return ToneFlirty
	}
	return ToneBestie
}
