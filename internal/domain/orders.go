package domain

import (
	"fmt"
	"strings"

	"bombe.dev/pkg/bombe/internal/domain/rotor"
	m "bombe.dev/pkg/bombe/internal/model"
)

// DefaultWheelPool is the set of wheels an unqualified search draws from.
var DefaultWheelPool = []string{"I", "II", "III", "IV", "V"}

// WheelOrders lists every ordered choice of three distinct wheels from pool,
// in pool order.
func WheelOrders(pool []string) []m.WheelOrder {
	var orders []m.WheelOrder

	for _, left := range pool {
		for _, middle := range pool {
			if middle == left {
				continue
			}

			for _, right := range pool {
				if right == left || right == middle {
					continue
				}

				orders = append(orders, m.WheelOrder{left, middle, right})
			}
		}
	}

	return orders
}

// ParseWheelOrder reads an order such as "I,II,III" or "I II III".
func ParseWheelOrder(s string) (m.WheelOrder, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '-'
	})

	if len(fields) != 3 {
		return m.WheelOrder{}, fmt.Errorf("%w: wheel order %q needs three wheels", rotor.ErrInvalidSpecification, s)
	}

	return m.WheelOrder{fields[0], fields[1], fields[2]}, nil
}

// BombeConfigFor resolves a wheel order and reflector against the catalog.
// Bombe wheels carry no ring or pegs so only the wirings are used.
func BombeConfigFor(catalog *rotor.Catalog, reflector string, order m.WheelOrder, menu m.Menu) (BombeConfig, error) {
	cfg := BombeConfig{Menu: menu}

	var err error

	cfg.Reflector, err = catalog.Reflector(reflector)
	if err != nil {
		return BombeConfig{}, err
	}

	for i, name := range order {
		cfg.Wheels[i], err = catalog.WheelWiring(name)
		if err != nil {
			return BombeConfig{}, err
		}
	}

	return cfg, nil
}
