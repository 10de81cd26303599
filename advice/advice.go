// Package advice turns a week's derived metrics into the rule-based daily
// message the journal surfaces. Rules key on the wall-clock weekday, not the
// loaded week's dates: Monday gets the kickoff note, Saturday the withdrawal
// breakdown.
package advice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rvaldes/tradeweek/ledger"
	"github.com/rvaldes/tradeweek/tracker"
)

// Message is one advice card.
type Message struct {
	Title string
	Body  string
}

// WithdrawalSplit divides a weekly total into the recommended withdrawal and
// the remainder to reinvest, using the rollover engine's rate. A loss splits
// into nothing.
func WithdrawalSplit(total decimal.Decimal) (withdraw, reinvest decimal.Decimal) {
	if total.IsNegative() {
		return decimal.Zero, decimal.Zero
	}
	withdraw = total.Mul(tracker.WithdrawalRate)
	return withdraw, total.Sub(withdraw)
}

// Daily builds the advice message for now's weekday from the week summary.
func Daily(now time.Time, s ledger.Summary) Message {
	day := now.Weekday()

	var b strings.Builder
	fmt.Fprintf(&b, "Initial capital $%s | Balance $%s | Week P/L $%s (%s%%)\n\n",
		s.InitialCapital.StringFixed(2),
		s.Balance.StringFixed(2),
		s.TotalProfitLoss.StringFixed(2),
		s.ProfitLossPercentage.StringFixed(2),
	)

	positive := s.TotalProfitLoss.IsPositive()

	switch day {
	case time.Monday:
		b.WriteString("Kick off the week with focus. Set one or two realistic goals and plan core trades.\n")
		b.WriteString("- Review capital and risk before trading.\n")
		b.WriteString("- Quality over quantity: avoid overtrading.\n")
		if positive {
			b.WriteString("- Strong start; keep the discipline.")
		} else {
			b.WriteString("- Weak start; be selective and cut size.")
		}
	case time.Tuesday:
		b.WriteString("Consolidate momentum: seek confirmations, do not chase late entries.\n")
		b.WriteString("- Set stops to real structure, not round numbers.\n")
		if positive {
			b.WriteString("- Protect gains and guard your edge.")
		} else {
			b.WriteString("- Minimize losses and wait for better setups.")
		}
	case time.Wednesday:
		b.WriteString("Midweek: assess progress and adjust course.\n")
		b.WriteString("- Doing well? Avoid overconfidence.\n")
		b.WriteString("- Behind? Simplify and reduce exposure.\n")
		b.WriteString("- Consistency beats perfection.")
	case time.Thursday:
		b.WriteString("Prepare the weekly close. Be selective, avoid forcing trades.\n")
		b.WriteString("- Prioritize setups with clear confluences.\n")
		b.WriteString("- Do not chase last-minute recoveries.")
	case time.Friday:
		b.WriteString("Close the week with a cool head.\n")
		b.WriteString("- Do not risk consolidated gains.\n")
		b.WriteString("- Note key takeaways for the weekend review.")
	case time.Saturday:
		withdraw, reinvest := WithdrawalSplit(s.TotalProfitLoss)
		b.WriteString("Weekly review and withdrawal day.\n")
		fmt.Fprintf(&b, "- Weekly result: $%s.\n", s.TotalProfitLoss.StringFixed(2))
		if positive {
			fmt.Fprintf(&b, "- Suggested withdrawal (30%%): $%s.\n", withdraw.StringFixed(2))
			fmt.Fprintf(&b, "- To reinvest next week: $%s.", reinvest.StringFixed(2))
		} else {
			b.WriteString("- No withdrawal on a losing week; the balance carries over as is.")
		}
	case time.Sunday:
		b.WriteString("Markets rest, so should you. Review the week's entries and plan Monday.\n")
		fmt.Fprintf(&b, "- Days in profit: %d, days in loss: %d.", s.PositiveDays, s.NegativeDays)
	}

	return Message{
		Title: "Daily advice - " + day.String(),
		Body:  b.String(),
	}
}
