package constants

import "time"

// Quote is a short daily prompt shown on the stats screen and by the
// quote command.
type Quote struct {
	Text   string
	Author string
}

var StoicQuotes = []Quote{
	{"The happiness of your life depends upon the quality of your thoughts.", "Marcus Aurelius"},
	{"We suffer more often in imagination than in reality.", "Seneca"},
	{"It's not what happens to you, but how you react to it that matters.", "Epictetus"},
	{"If you want to improve, be content to be thought foolish and stupid.", "Epictetus"},
	{"He who suffers before it is necessary suffers more than is necessary.", "Seneca"},
	{"The best revenge is to be unlike him who performed the injury.", "Marcus Aurelius"},
	{"Difficulties strengthen the mind, as labor does the body.", "Seneca"},
	{"No man is free who is not master of himself.", "Epictetus"},
	{"The impediment to action advances action. What stands in the way becomes the way.", "Marcus Aurelius"},
	{"Start where you are. Use what you have. Do what you can.", "Arthur Ashe"},
	{"Wealth consists not in having great possessions, but in having few wants.", "Epictetus"},
	{"Dare to be wise.", "Horace"},
}

// QuoteOfTheDay picks a deterministic quote for the given day so the same
// quote is shown all day long.
func QuoteOfTheDay(day string) Quote {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return StoicQuotes[0]
	}
	return StoicQuotes[t.YearDay()%len(StoicQuotes)]
}
