package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/joechala/treegen/internal/utils"
)

// affirmativeAnswers are the only inputs that confirm a prompt.
var affirmativeAnswers = []string{"y", "yes"}

// Confirmer asks a yes/no question and reports the answer. The interactive
// implementation blocks until a line of input is available; tests inject a
// non-interactive stub.
type Confirmer interface {
	Confirm(prompt string) bool
}

// lineConfirmer reads a single line from the provided reader. End of input
// counts as a negative answer.
type lineConfirmer struct {
	reader *bufio.Reader
	writer io.Writer
}

func newLineConfirmer(reader io.Reader, writer io.Writer) *lineConfirmer {
	return &lineConfirmer{reader: bufio.NewReader(reader), writer: writer}
}

func (confirmer *lineConfirmer) Confirm(prompt string) bool {
	fmt.Fprint(confirmer.writer, prompt)
	answerLine, readError := confirmer.reader.ReadString('\n')
	if readError != nil && answerLine == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(answerLine))
	return utils.ContainsString(affirmativeAnswers, answer)
}

var _ Confirmer = (*lineConfirmer)(nil)
