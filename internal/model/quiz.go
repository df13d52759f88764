// internal/model/quiz.go
package model

// QuizQuestion は多肢選択問題1問分です。
// Options は "A: ..." のように選択肢の文字から始まる4要素、
// Correct は正解の選択肢の文字 ("A"〜"D") です。
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  string   `json:"correct"`
}

// Quiz は生成済みクイズ本体です。採点のため QuizStore に一時保存されます。
type Quiz struct {
	Topic     string         `json:"topic"`
	Questions []QuizQuestion `json:"questions"`
}

// GenerateQuizRequest はクイズ生成リクエストDTO
type GenerateQuizRequest struct {
	Topic string `json:"topic" validate:"required,min=1,max=200"`
	Num   int    `json:"num" validate:"omitempty,min=1,max=20"`
}

// SubmitQuizRequest はクイズ回答リクエストDTO。
// Answers は 問題文 → 選択した文字 のマップです。
type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers"`
}

// SubmitQuizResponse は採点結果
type SubmitQuizResponse struct {
	Score int `json:"score"`
	Total int `json:"total"`
}
