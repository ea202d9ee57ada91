package song

import "github.com/verte-zerg/typefall/internal/model"

func notes(ids ...string) []model.NoteID {
	out := make([]model.NoteID, len(ids))
	for i, id := range ids {
		out[i] = model.NoteID(id)
	}
	return out
}

// Builtin returns the songs shipped with the game.
func Builtin() []model.SongConfig {
	return []model.SongConfig{
		{
			Name:               "Fur Elise",
			WordsPerMinute:     60,
			PixelsPerInterval:  15,
			DelayPerMovementMs: 50,
			Notes: notes(
				"E5", "D#5", "E5", "D#5", "E5", "B4", "D5", "C5", "A4",
				"C4", "E4", "A4", "B4",
				"E4", "G#4", "B4", "C5",
				"E4", "E5", "D#5", "E5", "D#5", "E5", "B4", "D5", "C5", "A4",
				"C4", "E4", "A4", "B4",
				"E4", "C5", "B4", "A4",
			),
		},
		{
			Name:               "Moonlight Sonata",
			WordsPerMinute:     45,
			PixelsPerInterval:  12,
			DelayPerMovementMs: 50,
			Notes: notes(
				"G#3", "C#4", "E4", "G#3", "C#4", "E4",
				"G#3", "C#4", "E4", "G#3", "C#4", "E4",
				"A3", "C#4", "E4", "A3", "C#4", "E4",
				"A3", "D4", "F#4", "A3", "D4", "F#4",
				"G#3", "C4", "F#4", "G#3", "C#4", "E4",
				"G#3", "C#4", "D#4", "F#3", "C4", "D#4",
			),
		},
		{
			Name:               "Practice",
			WordsPerMinute:     40,
			PixelsPerInterval:  10,
			DelayPerMovementMs: 50,
			LetterDelayMs:      350,
			Notes:              notes("C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5"),
		},
	}
}
