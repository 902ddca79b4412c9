package nav

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Kind distinguishes plain links from expandable menus.
type Kind string

const (
	KindLink     Kind = "link"
	KindDropdown Kind = "dropdown"
)

// Link is one child entry of a dropdown.
type Link struct {
	Label string `yaml:"label" koanf:"label" validate:"required"`
	Path  string `yaml:"path" koanf:"path" validate:"required,startswith=/"`
}

// Item is a top-level navigation entry.
type Item struct {
	ID       string `yaml:"id" koanf:"id" validate:"required,alphanum"`
	Label    string `yaml:"label" koanf:"label" validate:"required"`
	Kind     Kind   `yaml:"kind" koanf:"kind" validate:"oneof=link dropdown"`
	Path     string `yaml:"path,omitempty" koanf:"path" validate:"omitempty,startswith=/"`
	Children []Link `yaml:"children,omitempty" koanf:"children" validate:"dive"`
}

// ErrInvalidItems is returned when a navigation configuration is malformed.
var ErrInvalidItems = errors.New("invalid navigation items")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateItems checks field constraints plus the rules tags cannot express:
// ids are unique, links carry a path and dropdowns carry children.
func ValidateItems(items []Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidItems)
	}
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if err := validatorInstance().Struct(it); err != nil {
			return fmt.Errorf("%w: item %d: %v", ErrInvalidItems, i, err)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidItems, it.ID)
		}
		seen[it.ID] = true

		switch it.Kind {
		case KindLink:
			if it.Path == "" {
				return fmt.Errorf("%w: link %q has no path", ErrInvalidItems, it.ID)
			}
		case KindDropdown:
			if len(it.Children) == 0 {
				return fmt.Errorf("%w: dropdown %q has no children", ErrInvalidItems, it.ID)
			}
		}
	}
	return nil
}

// DefaultItems is the site's navigation bar.
func DefaultItems() []Item {
	return []Item{
		{ID: "home", Label: "Home", Kind: KindLink, Path: "/"},
		{ID: "hooks", Label: "Hooks", Kind: KindDropdown, Children: []Link{
			{Label: "useState", Path: "/usestate"},
			{Label: "useEffect", Path: "/useeffect"},
			{Label: "useContext", Path: "/usecontext"},
			{Label: "useReducer", Path: "/usereducer"},
			{Label: "useRef", Path: "/useref"},
			{Label: "useMemo", Path: "/usememo"},
		}},
		{ID: "workshops", Label: "Workshops", Kind: KindDropdown, Children: []Link{
			{Label: "All Workshops", Path: "/workshops"},
			{Label: "1: Setting Up React", Path: "/workshops/1"},
			{Label: "2: Bootstrap in React", Path: "/workshops/2"},
			{Label: "3: Events & useState", Path: "/workshops/3"},
			{Label: "4: Advanced State", Path: "/workshops/4"},
			{Label: "5: React Router", Path: "/workshops/5"},
		}},
		{ID: "designPattern", Label: "Design Patterns", Kind: KindDropdown, Children: []Link{
			{Label: "Overview", Path: "/designPattern"},
			{Label: "Single Responsibility", Path: "/designPattern/SRP"},
			{Label: "Open/Closed", Path: "/designPattern/OCP"},
			{Label: "Liskov Substitution", Path: "/designPattern/LSP"},
			{Label: "Interface Segregation", Path: "/designPattern/ISP"},
			{Label: "Dependency Inversion", Path: "/designPattern/DIP"},
			{Label: "Factory & Singleton", Path: "/designPattern/factoryAndSingleton"},
			{Label: "Adapter & Composite", Path: "/designPattern/adapterAndComposite"},
			{Label: "Template Method", Path: "/designPattern/templateMethod"},
		}},
		{ID: "about", Label: "About Us", Kind: KindLink, Path: "/about"},
	}
}
