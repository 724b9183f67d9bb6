package assets

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed answers_4.txt answers_5.txt answers_6.txt allowed_4.txt allowed_5.txt allowed_6.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded answer words for a length (4-6).
func AnswersList(length int) ([]string, error) {
	return readLines(fmt.Sprintf("answers_%d.txt", length))
}

// AllowedList returns the embedded extra allowed guesses for a length.
// Answers are not repeated here; the words provider unions the two.
func AllowedList(length int) ([]string, error) {
	return readLines(fmt.Sprintf("allowed_%d.txt", length))
}
