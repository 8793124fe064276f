package prototype

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// toInt accepts Go integers that fit in int, integral floats (JSON and YAML
// decoders produce those) and base 10 numeric strings.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, fmt.Errorf("want integer, got nil")
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("want base 10 integer, got %q", n)
		}
		return i, nil
	case int, int8, int16, int32, int64:
		i, err := cast.ToInt64E(v)
		if err != nil {
			return 0, fmt.Errorf("want integer, got %T", v)
		}
		if i > math.MaxInt || i < math.MinInt {
			return 0, fmt.Errorf("%d out of range", i)
		}
		return int(i), nil
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u, err := cast.ToUint64E(uintOf(v))
		if err != nil {
			return 0, fmt.Errorf("want integer, got %T", v)
		}
		if u > math.MaxInt {
			return 0, fmt.Errorf("%d out of range", u)
		}
		return int(u), nil
	default:
		return 0, fmt.Errorf("want integer, got %T", v)
	}
}

// uintOf widens uintptr, which cast does not know about.
func uintOf(v any) any {
	if p, ok := v.(uintptr); ok {
		return uint64(p)
	}
	return v
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("want integer, got %v", f)
	}
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("%v out of range", f)
	}
	return int(f), nil
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("want string, got %T", v)
	}
	return s, nil
}
