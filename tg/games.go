package tg

// Game is an HTML5 game.
type Game struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Photo        []PhotoSize     `json:"photo"`
	Text         string          `json:"text,omitempty"`
	TextEntities []MessageEntity `json:"text_entities,omitempty"`
	Animation    *Animation      `json:"animation,omitempty"`
}

// GameHighScore is a row of a game's high score table.
type GameHighScore struct {
	Position int  `json:"position"`
	User     User `json:"user"`
	Score    int  `json:"score"`
}

// Bind implements Bindable.
func (s *GameHighScore) Bind(c Caller) {
	if s != nil {
		s.User.Bind(c)
	}
}

// CallbackGame marks a button that launches a game. It has no fields.
type CallbackGame struct{}
