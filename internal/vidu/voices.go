package vidu

// Voice is a lip-sync voice character usable in text-drive mode.
type Voice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// voiceCatalog is the built-in character set for lip-sync text drive.
var voiceCatalog = []Voice{
	{ID: "male_1", Label: "Male 1 - composed and steady"},
	{ID: "male_2", Label: "Male 2 - news broadcast"},
	{ID: "male_3", Label: "Male 3 - calm and measured"},
	{ID: "male_4", Label: "Male 4 - brisk and open"},
	{ID: "male_5", Label: "Male 5 - soft announcer"},
	{ID: "male_6", Label: "Male 6 - warm and natural"},
	{ID: "male_7", Label: "Male 7 - deep and slow"},
	{ID: "male_8", Label: "Male 8 - radio voice"},
	{ID: "female_1", Label: "Female 1 - gentle and warm"},
	{ID: "female_2", Label: "Female 2 - soft and sweet"},
	{ID: "female_3", Label: "Female 3 - unhurried"},
	{ID: "female_4", Label: "Female 4 - soft and natural"},
	{ID: "female_5", Label: "Female 5 - natural and open"},
	{ID: "female_6", Label: "Female 6 - composed and steady"},
	{ID: "female_7", Label: "Female 7 - warm and friendly"},
	{ID: "female_8", Label: "Female 8 - mature and soft"},
	{ID: "female_13", Label: "Female 13 - news broadcast"},
	{ID: "female_14", Label: "Female 14 - customer service"},
	{ID: "tts_female_1", Label: "Zhiyu - thoughtful female"},
	{ID: "tts_female_2", Label: "Zhiling - general female"},
	{ID: "tts_female_5", Label: "Zhiyan - assistant female"},
	{ID: "tts_female_11", Label: "Zhitian - child female"},
}

// Voices returns a copy of the built-in voice character catalog.
func Voices() []Voice {
	out := make([]Voice, len(voiceCatalog))
	copy(out, voiceCatalog)
	return out
}

// VoiceByID looks up a voice character by its id.
func VoiceByID(id string) (Voice, bool) {
	for _, v := range voiceCatalog {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}
