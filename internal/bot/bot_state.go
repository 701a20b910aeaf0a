package bot

type BotState int

const (
	StateDefault BotState = iota
	// После /now без аргументов ждём имя ученика
	StateAwaitingPupilName
)

type UserSession struct {
	State BotState
}

func (b *Bot) getOrCreateSession(chatID int64) *UserSession {
	b.mu.Lock()
	defer b.mu.Unlock()

	if session, exists := b.userSessions[chatID]; exists {
		return session
	}

	session := &UserSession{State: StateDefault}
	b.userSessions[chatID] = session
	return session
}

func (b *Bot) setState(chatID int64, state BotState) {
	session := b.getOrCreateSession(chatID)

	b.mu.Lock()
	defer b.mu.Unlock()
	session.State = state
}

func (b *Bot) sessionState(chatID int64) BotState {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if session, exists := b.userSessions[chatID]; exists {
		return session.State
	}
	return StateDefault
}

func (b *Bot) resetSession(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.userSessions, chatID)
}
