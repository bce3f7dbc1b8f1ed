package stac

// Type is the value of a STAC document's "type" field.
type Type string

// The closed set of object types.
const (
	TypeItem       Type = "Item"
	TypeCatalog    Type = "Catalog"
	TypeCollection Type = "Collection"
)

func (t Type) String() string { return string(t) }

// Object is one of *Item, *Catalog or *Collection.
//
// The interface is sealed: only this package can add implementations, and
// every Object is produced by FromValue (or the Read helpers built on it).
type Object interface {
	// Type reports the discriminator this object was decoded from.
	Type() Type
	accept(v Visitor)
}

// Visitor handles each object type. Implementations must cover every
// variant, so adding a variant breaks them at compile time.
type Visitor interface {
	VisitItem(*Item)
	VisitCatalog(*Catalog)
	VisitCollection(*Collection)
}

// Accept calls the Visitor method matching o's variant.
func Accept(o Object, v Visitor) { o.accept(v) }

func (i *Item) Type() Type       { return TypeItem }
func (c *Catalog) Type() Type    { return TypeCatalog }
func (c *Collection) Type() Type { return TypeCollection }

func (i *Item) accept(v Visitor)       { v.VisitItem(i) }
func (c *Catalog) accept(v Visitor)    { v.VisitCatalog(c) }
func (c *Collection) accept(v Visitor) { v.VisitCollection(c) }

// Match dispatches o to the handler for its variant and returns the result.
// Handlers are positional so that a new variant is a signature change for
// every caller.
//
// Note that this is a function so that the result can be a generic type. Go
// does not allow methods to have type parameters unrelated to the receiver.
func Match[R any](o Object, onItem func(*Item) R, onCatalog func(*Catalog) R, onCollection func(*Collection) R) R {
	m := &matcher[R]{onItem: onItem, onCatalog: onCatalog, onCollection: onCollection}
	o.accept(m)
	return m.out
}

type matcher[R any] struct {
	onItem       func(*Item) R
	onCatalog    func(*Catalog) R
	onCollection func(*Collection) R
	out          R
}

func (m *matcher[R]) VisitItem(i *Item)             { m.out = m.onItem(i) }
func (m *matcher[R]) VisitCatalog(c *Catalog)       { m.out = m.onCatalog(c) }
func (m *matcher[R]) VisitCollection(c *Collection) { m.out = m.onCollection(c) }

// AsItem returns o as an Item, or false if o is another variant.
func AsItem(o Object) (*Item, bool) {
	i, ok := o.(*Item)
	return i, ok
}

// AsCatalog returns o as a Catalog, or false if o is another variant.
func AsCatalog(o Object) (*Catalog, bool) {
	c, ok := o.(*Catalog)
	return c, ok
}

// AsCollection returns o as a Collection, or false if o is another variant.
func AsCollection(o Object) (*Collection, bool) {
	c, ok := o.(*Collection)
	return c, ok
}
