package values

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestConvertWorkingDaysToHours(t *testing.T) {
	is := is.New(t)

	d, err := NewDuration(2, Days).ConvertUnits(Hours, DefaultTimeUnitDefaults)
	is.NoErr(err)
	is.Equal(d, NewDuration(16, Hours))
}

func TestConvertElapsedDaysToHours(t *testing.T) {
	is := is.New(t)

	d, err := NewDuration(2, ElapsedDays).ConvertUnits(ElapsedHours, DefaultTimeUnitDefaults)
	is.NoErr(err)
	is.Equal(d, NewDuration(48, ElapsedHours))
}

func TestConvertPercentFails(t *testing.T) {
	is := is.New(t)

	_, err := NewDuration(50, Percent).ConvertUnits(Days, DefaultTimeUnitDefaults)
	is.True(err != nil)

	d, err := NewDuration(50, Percent).ConvertUnits(Percent, DefaultTimeUnitDefaults)
	is.NoErr(err)
	is.Equal(d.Magnitude, 50.0)
}

func TestTimeUnitCodes(t *testing.T) {
	is := is.New(t)

	is.Equal(ElapsedDays.Code(), "ed")
	is.Equal(NewDuration(1.5, ElapsedDays).String(), "1.5ed")
	is.Equal(NewRate(50, Hours).String(), "50/h")
	is.True(ElapsedMonths.IsElapsed())
	is.True(!Months.IsElapsed())

	for _, code := range shortCodes {
		_, ok := TimeUnits.ByName(code)
		is.True(ok) // every short code is an alias
	}
}

func TestMapKeepsFirstPositionOfDuplicates(t *testing.T) {
	is := is.New(t)

	m := NewMap(KV("b", 1), KV("a", 2), KV("b", 3))
	is.Equal(m.Keys(), []string{"b", "a"})

	v, _ := m.Get("b")
	is.Equal(v, 3)

	b, err := m.MarshalJSON()
	is.NoErr(err)
	is.Equal(string(b), `{"b":3,"a":2}`)
}

func TestFromGoMapSortsKeys(t *testing.T) {
	is := is.New(t)

	m := FromGoMap(map[string]any{"tuesday": 2, "monday": 1, "wednesday": 3})
	is.Equal(m.Keys(), []string{"monday", "tuesday", "wednesday"})
}

func TestParseLocalTime(t *testing.T) {
	is := is.New(t)

	lt, err := ParseLocalTime("08:30")
	is.NoErr(err)
	is.Equal(lt, NewLocalTime(8, 30, 0))

	_, err = ParseLocalTime("half past eight")
	is.True(err != nil)
}

func TestMapsStoredByValueKeepTheirEntries(t *testing.T) {
	is := is.New(t)

	codes := List{*NewMap(KV("code", "A1"), KV("value", 1)), NewMap(KV("code", "B2"))}
	b, err := json.Marshal(codes)
	is.NoErr(err)
	is.Equal(string(b), `[{"code":"A1","value":1},{"code":"B2"}]`)

	b, err = json.Marshal(Binary{Value: *NewMap(KV("nested", *NewMap(KV("a", 1))))})
	is.NoErr(err)
	is.Equal(string(b), `{"nested":{"a":1}}`)

	var missing *Map
	b, err = json.Marshal(struct {
		M *Map `json:"m"`
	}{missing})
	is.NoErr(err)
	is.Equal(string(b), `{"m":null}`)
}
