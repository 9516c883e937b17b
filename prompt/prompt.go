package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"bikeshare/utils"

	log "github.com/sirupsen/logrus"
)

var ErrInputClosed = errors.New("input closed")

// Prompter asks questions through writer and reads the answers from reader
type Prompter struct {
	scanner *bufio.Scanner
	writer  io.Writer
}

func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(reader),
		writer:  writer,
	}
}

// AskCity asks for one of cities until a valid one is entered
func (p *Prompter) AskCity(cities []string) (string, error) {
	question := fmt.Sprintf("Enter one of the following city names: %s", strings.Join(cities, ", "))
	return p.askOption(question, "city name", cities)
}

// AskMonth asks for one of months or "all" until a valid one is entered
func (p *Prompter) AskMonth(months []string, all string) (string, error) {
	question := fmt.Sprintf("Enter month name in full, e.g. %s, or '%s' for no month filter", months[len(months)-1], all)
	return p.askOption(question, "month name", append([]string{all}, months...))
}

// AskDay asks for one of days or "all" until a valid one is entered
func (p *Prompter) AskDay(days []string, all string) (string, error) {
	question := fmt.Sprintf("Enter day name in full, e.g. %s, or '%s' for no day filter", days[0], all)
	return p.askOption(question, "day name", append([]string{all}, days...))
}

// AskYesNo returns true only when the answer is yes
func (p *Prompter) AskYesNo(question string) (bool, error) {
	answer, err := p.ask(fmt.Sprintf("%s Enter yes or no.", question))
	if err != nil {
		return false, err
	}
	return answer == "yes" || answer == "y", nil
}

// Say writes a message for the user
func (p *Prompter) Say(message string) {
	_, err := fmt.Fprintln(p.writer, message)
	if err != nil {
		log.Errorf("[stage: prompt][status: ERROR] error writing message: %s", err.Error())
	}
}

func (p *Prompter) askOption(question string, what string, options []string) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if utils.ContainsString(answer, options) {
			return answer, nil
		}
		log.Debugf("[stage: prompt] invalid %s: %q", what, answer)
		p.Say(fmt.Sprintf("\nOops! That was not a correct %s. Try again..", what))
	}
}

// ask returns the answer trimmed and in lower case
func (p *Prompter) ask(question string) (string, error) {
	p.Say("\n" + question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading answer: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.ToLower(strings.TrimSpace(p.scanner.Text())), nil
}
