package text

// Greeting is "hello" in one language.
type Greeting struct {
	Language string
	Text     string
}

// Greetings returns the multi-script greeting list. Every entry is valid
// UTF-8 regardless of script.
func Greetings() []Greeting {
	return []Greeting{
		{"Arabic", "السلام عليكم"},
		{"Czech", "Dobrý den"},
		{"English", "Hello"},
		{"Hebrew", "שָׁלוֹם"},
		{"Hindi", "नमस्ते"},
		{"Japanese", "こんにちは"},
		{"Korean", "안녕하세요"},
		{"Chinese", "你好"},
		{"Portuguese", "Olá"},
		{"Russian", "Здравствуйте"},
		{"Spanish", "Hola"},
	}
}
