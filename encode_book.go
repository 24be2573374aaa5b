package bankroll

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecordType identifies the kind of a line in a book file.
type RecordType string

// Record types of a book file.
const (
	RecSettings   RecordType = "settings"
	RecPlatform   RecordType = "platform"
	RecDeposit    RecordType = "deposit"
	RecWithdrawal RecordType = "withdrawal"
	RecOnline     RecordType = "online"
	RecLive       RecordType = "live"
	RecAdjustment RecordType = "adjustment"
)

// The j* structs are the decoding shapes of each record type.

type jtiming struct {
	Start        time.Time  `json:"start"`
	End          *time.Time `json:"end"`
	Duration     float64    `json:"duration"`
	BreakMinutes float64    `json:"breakMinutes"`
}

func (t jtiming) timing() timing {
	return timing{Start: t.Start, End: t.End, Duration: t.Duration, BreakMinutes: t.BreakMinutes}
}

type jplatform struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Created  time.Time       `json:"created"`
}

type jdeposit struct {
	ID         uuid.UUID       `json:"id"`
	PlatformID uuid.UUID       `json:"platform"`
	Date       time.Time       `json:"date"`
	Sent       decimal.Decimal `json:"sent"`
	Received   decimal.Decimal `json:"received"`
	FX         bool            `json:"fx"`
	Rate       Rate            `json:"rate"`
	Fee        decimal.Decimal `json:"fee"`
	Method     string          `json:"method"`
}

type jwithdrawal struct {
	ID         uuid.UUID       `json:"id"`
	PlatformID uuid.UUID       `json:"platform"`
	Date       time.Time       `json:"date"`
	Requested  decimal.Decimal `json:"requested"`
	Received   decimal.Decimal `json:"received"`
	FX         bool            `json:"fx"`
	Rate       Rate            `json:"rate"`
	Fee        decimal.Decimal `json:"fee"`
	Method     string          `json:"method"`
}

type jonline struct {
	ID         uuid.UUID `json:"id"`
	PlatformID uuid.UUID `json:"platform"`
	Game       string    `json:"game"`
	jtiming
	Tables        int             `json:"tables"`
	TableSize     int             `json:"tableSize"`
	Hands         int             `json:"hands"`
	Blinds        Blinds          `json:"blinds"`
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	Net           decimal.Decimal `json:"net"`
	NetBase       decimal.Decimal `json:"netBase"`
	Rate          Rate            `json:"rate"`
}

type jlive struct {
	ID       uuid.UUID `json:"id"`
	Game     string    `json:"game"`
	Location string    `json:"location"`
	jtiming
	Hands       int             `json:"hands"`
	Blinds      Blinds          `json:"blinds"`
	BuyIn       decimal.Decimal `json:"buyIn"`
	CashOut     decimal.Decimal `json:"cashOut"`
	Tips        decimal.Decimal `json:"tips"`
	RateBuyIn   Rate            `json:"rateBuyIn"`
	RateCashOut Rate            `json:"rateCashOut"`
	Rate        Rate            `json:"rate"`
}

type jadjustment struct {
	ID         uuid.UUID       `json:"id"`
	PlatformID uuid.UUID       `json:"platform"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	AmountBase decimal.Decimal `json:"amountBase"`
	Kind       SessionKind     `json:"kind"`
	Notes      string          `json:"notes"`
}

// orNew returns id, or a fresh one when id is unset.
func orNew(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

// decoded accumulates records until they can be attached to their platform.
type decoded struct {
	book        *Book
	deposits    []Deposit
	withdrawals []Withdrawal
	online      []OnlineCash
	adjustments []Adjustment
}

func (d *decoded) decodeLine(line []byte) error {
	var identifier struct {
		Record RecordType `json:"record"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return fmt.Errorf("could not identify record: %w", err)
	}

	switch identifier.Record {
	case RecSettings:
		var s Settings
		if err := json.Unmarshal(line, &s); err != nil {
			return err
		}
		d.book.Settings = d.book.Settings.Merge(s)
	case RecPlatform:
		var j jplatform
		if err := json.Unmarshal(line, &j); err != nil {
			return err
		}
		if j.ID == uuid.Nil {
			return errors.New("platform without id")
		}
		if _, exists := d.book.Platform(j.ID); exists {
			return fmt.Errorf("platform %s is already defined", j.ID)
		}
		d.book.Platforms = append(d.book.Platforms, Platform{
			ID:             j.ID,
			Name:           j.Name,
			Currency:       j.Currency,
			CurrentBalance: j.Balance,
			Created:        j.Created,
		})
	case RecDeposit:
		var j jdeposit
		if err := json.Unmarshal(line, &j); err != nil {
			return err
		}
		d.deposits = append(d.deposits, Deposit{
			ID:                    orNew(j.ID),
			PlatformID:            j.PlatformID,
			Date:                  j.Date,
			AmountSent:            j.Sent,
			AmountReceived:        j.Received,
			IsForeignExchange:     j.FX,
			EffectiveExchangeRate: j.Rate,
			Fee:                   j.Fee,
			Method:                j.Method,
		})
	case RecWithdrawal:
		var j jwithdrawal
		if err := json.Unmarshal(line, &j); err != nil {
			return err
		}
		d.withdrawals = append(d.withdrawals, Withdrawal{
			ID:                    orNew(j.ID),
			PlatformID:            j.PlatformID,
			Date:                  j.Date,
			AmountRequested:       j.Requested,
			AmountReceived:        j.Received,
			IsForeignExchange:     j.FX,
			EffectiveExchangeRate: j.Rate,
			Fee:                   j.Fee,
			Method:                j.Method,
		})
	case RecOnline:
		var j jonline
		if err := json.Unmarshal(line, &j); err != nil {
			return err
		}
		d.online = append(d.online, OnlineCash{
			ID:                 orNew(j.ID),
			PlatformID:         j.PlatformID,
			Game:               j.Game,
			timing:             j.timing(),
			Tables:             j.Tables,
			TableSize:          j.TableSize,
			HandsCount:         j.Hands,
			Blinds:             j.Blinds,
			BalanceBefore:      j.BalanceBefore,
			BalanceAfter:       j.BalanceAfter,
			NetProfitLoss:      j.Net,
			NetProfitLossBase:  j.NetBase,
			ExchangeRateToBase: j.Rate,
		})
	case RecLive:
		var j jlive
		if err := json.Unmarshal(line, &j); err != nil {
			return err
		}
		d.book.Live = append(d.book.Live, LiveCash{
			ID:                  orNew(j.ID),
			Game:                j.Game,
			Location:            j.Location,
			timing:              j.timing(),
			HandsCount:          j.Hands,
			Blinds:              j.Blinds,
			BuyIn:               j.BuyIn,
			CashOut:             j.CashOut,
			Tips:                j.Tips,
			ExchangeRateBuyIn:   j.RateBuyIn,
			ExchangeRateCashOut: j.RateCashOut,
			ExchangeRateToBase:  j.Rate,
		})
	case RecAdjustment:
		var j jadjustment
		if err := json.Unmarshal(line, &j); err != nil {
			return err
		}
		d.adjustments = append(d.adjustments, Adjustment{
			ID:         orNew(j.ID),
			PlatformID: j.PlatformID,
			Date:       j.Date,
			Amount:     j.Amount,
			Currency:   j.Currency,
			AmountBase: j.AmountBase,
			Kind:       j.Kind,
			Notes:      j.Notes,
		})
	default:
		return fmt.Errorf("unknown record type %q", identifier.Record)
	}
	return nil
}

// platform returns the index of the platform with id.
func (d *decoded) platform(id uuid.UUID, what string) (int, error) {
	i := slices.IndexFunc(d.book.Platforms, func(p Platform) bool { return p.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("%s refers to unknown platform %s", what, id)
	}
	return i, nil
}

// attach links every child record to its platform.
func (d *decoded) attach() error {
	ps := d.book.Platforms
	for _, r := range d.deposits {
		i, err := d.platform(r.PlatformID, "deposit "+r.ID.String())
		if err != nil {
			return err
		}
		ps[i].Deposits = append(ps[i].Deposits, r)
	}
	for _, r := range d.withdrawals {
		i, err := d.platform(r.PlatformID, "withdrawal "+r.ID.String())
		if err != nil {
			return err
		}
		ps[i].Withdrawals = append(ps[i].Withdrawals, r)
	}
	for _, r := range d.online {
		i, err := d.platform(r.PlatformID, "online session "+r.ID.String())
		if err != nil {
			return err
		}
		ps[i].Sessions = append(ps[i].Sessions, r)
	}
	for _, r := range d.adjustments {
		if r.PlatformID == uuid.Nil {
			d.book.Adjustments = append(d.book.Adjustments, r)
			continue
		}
		i, err := d.platform(r.PlatformID, "adjustment "+r.ID.String())
		if err != nil {
			return err
		}
		ps[i].Adjustments = append(ps[i].Adjustments, r)
	}
	return nil
}

// DecodeBook decodes records from a stream of JSONL data, one record per
// line, and returns the Book they form.
//
// Records may appear in any order; every child record must refer to a
// platform defined somewhere in the stream.
func DecodeBook(r io.Reader) (*Book, error) {
	d := &decoded{book: NewBook()}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		if err := d.decodeLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if err := d.attach(); err != nil {
		return nil, err
	}
	return d.book, nil
}

// encode functions write one record each, in a stable field order.

func encodeSettings(s Settings) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecSettings)
	w.Optional("baseCurrency", s.BaseCurrency)
	w.Optional("handsPerHourOnline", s.HandsPerHourOnline)
	w.Optional("handsPerHourLive", s.HandsPerHourLive)
	return w.MarshalJSON()
}

func encodePlatform(p Platform) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecPlatform)
	w.Append("id", p.ID)
	w.Optional("name", p.Name)
	w.Optional("currency", p.Currency)
	w.Decimal("balance", p.CurrentBalance)
	w.Optional("created", p.Created)
	return w.MarshalJSON()
}

func encodeDeposit(r Deposit) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecDeposit)
	w.Append("id", r.ID)
	w.Append("platform", r.PlatformID)
	w.Optional("date", r.Date)
	w.Decimal("sent", r.AmountSent)
	w.Decimal("received", r.AmountReceived)
	w.Optional("fx", r.IsForeignExchange)
	w.Decimal("rate", r.EffectiveExchangeRate.Decimal())
	w.Decimal("fee", r.Fee)
	w.Optional("method", r.Method)
	return w.MarshalJSON()
}

func encodeWithdrawal(r Withdrawal) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecWithdrawal)
	w.Append("id", r.ID)
	w.Append("platform", r.PlatformID)
	w.Optional("date", r.Date)
	w.Decimal("requested", r.AmountRequested)
	w.Decimal("received", r.AmountReceived)
	w.Optional("fx", r.IsForeignExchange)
	w.Decimal("rate", r.EffectiveExchangeRate.Decimal())
	w.Decimal("fee", r.Fee)
	w.Optional("method", r.Method)
	return w.MarshalJSON()
}

func (w *jsonObjectWriter) timing(t timing) {
	w.Optional("start", t.Start)
	w.Optional("end", t.End)
	w.Optional("duration", t.Duration)
	w.Optional("breakMinutes", t.BreakMinutes)
}

func (w *jsonObjectWriter) blinds(b Blinds) {
	if b.Small.IsZero() && b.Big.IsZero() && b.Straddle.IsZero() && b.Ante.IsZero() {
		return
	}
	var bw jsonObjectWriter
	bw.Decimal("sb", b.Small)
	bw.Decimal("bb", b.Big)
	bw.Decimal("straddle", b.Straddle)
	bw.Decimal("ante", b.Ante)
	raw, err := bw.MarshalJSON()
	if err != nil {
		w.err = err
		return
	}
	w.Append("blinds", json.RawMessage(raw))
}

func encodeOnline(s OnlineCash) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecOnline)
	w.Append("id", s.ID)
	w.Append("platform", s.PlatformID)
	w.Optional("game", s.Game)
	w.timing(s.timing)
	w.Optional("tables", s.Tables)
	w.Optional("tableSize", s.TableSize)
	w.Optional("hands", s.HandsCount)
	w.blinds(s.Blinds)
	w.Decimal("balanceBefore", s.BalanceBefore)
	w.Decimal("balanceAfter", s.BalanceAfter)
	w.Decimal("net", s.NetProfitLoss)
	w.Decimal("netBase", s.NetProfitLossBase)
	w.Decimal("rate", s.ExchangeRateToBase.Decimal())
	return w.MarshalJSON()
}

func encodeLive(s LiveCash) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecLive)
	w.Append("id", s.ID)
	w.Optional("game", s.Game)
	w.Optional("location", s.Location)
	w.timing(s.timing)
	w.Optional("hands", s.HandsCount)
	w.blinds(s.Blinds)
	w.Decimal("buyIn", s.BuyIn)
	w.Decimal("cashOut", s.CashOut)
	w.Decimal("tips", s.Tips)
	w.Decimal("rateBuyIn", s.ExchangeRateBuyIn.Decimal())
	w.Decimal("rateCashOut", s.ExchangeRateCashOut.Decimal())
	w.Decimal("rate", s.ExchangeRateToBase.Decimal())
	return w.MarshalJSON()
}

func encodeAdjustment(a Adjustment) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecAdjustment)
	w.Append("id", a.ID)
	w.Optional("platform", a.PlatformID)
	w.Optional("date", a.Date)
	w.Decimal("amount", a.Amount)
	w.Optional("currency", a.Currency)
	w.Decimal("amountBase", a.AmountBase)
	w.Optional("kind", a.Kind)
	w.Optional("notes", a.Notes)
	return w.MarshalJSON()
}

// byDate returns a copy of list stably sorted by the date returned by on.
func byDate[T any](list []T, on func(T) time.Time) []T {
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b T) int { return on(a).Compare(on(b)) })
	return sorted
}

// EncodeBook writes the book in JSONL format, one record per line.
//
// The output is canonical: settings first, then each platform followed by
// its deposits, withdrawals, online sessions and adjustments, then live
// sessions and standalone adjustments. Children are sorted by date, the
// sort is stable.
func EncodeBook(w io.Writer, b *Book) error {
	var lines [][]byte
	add := func(line []byte, err error) error {
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		lines = append(lines, line)
		return nil
	}

	var errs error
	if b.Settings != (Settings{}) {
		errs = errors.Join(errs, add(encodeSettings(b.Settings)))
	}
	for _, p := range b.Platforms {
		errs = errors.Join(errs, add(encodePlatform(p)))
		for _, r := range byDate(p.Deposits, func(r Deposit) time.Time { return r.Date }) {
			errs = errors.Join(errs, add(encodeDeposit(r)))
		}
		for _, r := range byDate(p.Withdrawals, func(r Withdrawal) time.Time { return r.Date }) {
			errs = errors.Join(errs, add(encodeWithdrawal(r)))
		}
		for _, r := range byDate(p.Sessions, func(r OnlineCash) time.Time { return r.Start }) {
			errs = errors.Join(errs, add(encodeOnline(r)))
		}
		for _, r := range byDate(p.Adjustments, func(r Adjustment) time.Time { return r.Date }) {
			errs = errors.Join(errs, add(encodeAdjustment(r)))
		}
	}
	for _, r := range byDate(b.Live, func(r LiveCash) time.Time { return r.Start }) {
		errs = errors.Join(errs, add(encodeLive(r)))
	}
	for _, r := range byDate(b.Adjustments, func(r Adjustment) time.Time { return r.Date }) {
		errs = errors.Join(errs, add(encodeAdjustment(r)))
	}
	if errs != nil {
		return errs
	}

	for _, line := range lines {
		if _, err := w.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// OpenBook decodes the book stored in filename. The error wraps
// fs.ErrNotExist when the file does not exist.
func OpenBook(filename string) (*Book, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open book %q: %w", filename, err)
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	log.Debug().Str("file", filename).Int("platforms", len(b.Platforms)).Int("live", len(b.Live)).Msg("book-decoded")
	return b, nil
}

// SaveBook encodes the book into filename, replacing its content.
func SaveBook(filename string, b *Book) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("persist error: cannot create file %q: %w", filename, err)
	}
	defer f.Close()

	if err := EncodeBook(f, b); err != nil {
		return fmt.Errorf("persist error: write error on file %q: %w", filename, err)
	}
	log.Debug().Str("file", filename).Msg("book-saved")
	return f.Close()
}
