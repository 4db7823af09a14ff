package webstore

// EntityStore is an immutable snapshot of the full dataset: one slice per
// entity type in load order, plus key indexes for O(1) lookup. Reports only
// ever read it, so one snapshot can serve any number of concurrent report
// evaluations.
type EntityStore struct {
	Customers         []Customer
	Orders            []Order
	OrderItems        []OrderItem
	Products          []Product
	Categories        []Category
	ProductCategories []ProductCategory
	Stocks            []Stock
	Stores            []Store
	Carriers          []Carrier
	DiscountCodes     []DiscountCode

	customerByID     map[int]int
	orderByID        map[int]int
	productByID      map[int]int
	categoryByID     map[int]int
	storeByID        map[int]int
	discountCodeByID map[int]int
}

// NewEntityStore indexes the collections and verifies every foreign key
// resolves. A dangling reference returns a *ReferentialIntegrityError and no
// store.
func NewEntityStore(
	customers []Customer,
	orders []Order,
	orderItems []OrderItem,
	products []Product,
	categories []Category,
	productCategories []ProductCategory,
	stocks []Stock,
	stores []Store,
	carriers []Carrier,
	discountCodes []DiscountCode,
) (*EntityStore, error) {
	s := &EntityStore{
		Customers:         customers,
		Orders:            orders,
		OrderItems:        orderItems,
		Products:          products,
		Categories:        categories,
		ProductCategories: productCategories,
		Stocks:            stocks,
		Stores:            stores,
		Carriers:          carriers,
		DiscountCodes:     discountCodes,

		customerByID:     make(map[int]int, len(customers)),
		orderByID:        make(map[int]int, len(orders)),
		productByID:      make(map[int]int, len(products)),
		categoryByID:     make(map[int]int, len(categories)),
		storeByID:        make(map[int]int, len(stores)),
		discountCodeByID: make(map[int]int, len(discountCodes)),
	}

	for i, c := range customers {
		s.customerByID[c.ID] = i
	}
	for i, o := range orders {
		s.orderByID[o.ID] = i
	}
	for i, p := range products {
		s.productByID[p.ID] = i
	}
	for i, c := range categories {
		s.categoryByID[c.ID] = i
	}
	for i, st := range stores {
		s.storeByID[st.ID] = i
	}
	for i, d := range discountCodes {
		s.discountCodeByID[d.ID] = i
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *EntityStore) validate() error {
	for _, o := range s.Orders {
		if _, ok := s.customerByID[o.CustomerID]; !ok {
			return &ReferentialIntegrityError{Entity: "order", Key: o.ID, Target: "customer", Ref: o.CustomerID}
		}
		if o.DiscountCodeID != nil {
			if _, ok := s.discountCodeByID[*o.DiscountCodeID]; !ok {
				return &ReferentialIntegrityError{Entity: "order", Key: o.ID, Target: "discount code", Ref: *o.DiscountCodeID}
			}
		}
	}
	for _, it := range s.OrderItems {
		if _, ok := s.orderByID[it.OrderID]; !ok {
			return &ReferentialIntegrityError{Entity: "order item", Key: it.ID, Target: "order", Ref: it.OrderID}
		}
		if _, ok := s.productByID[it.ProductID]; !ok {
			return &ReferentialIntegrityError{Entity: "order item", Key: it.ID, Target: "product", Ref: it.ProductID}
		}
	}
	for _, pc := range s.ProductCategories {
		if _, ok := s.productByID[pc.ProductID]; !ok {
			return &ReferentialIntegrityError{Entity: "product category", Key: pc.ProductID, Target: "product", Ref: pc.ProductID}
		}
		if _, ok := s.categoryByID[pc.CategoryID]; !ok {
			return &ReferentialIntegrityError{Entity: "product category", Key: pc.ProductID, Target: "category", Ref: pc.CategoryID}
		}
	}
	for _, st := range s.Stocks {
		if _, ok := s.productByID[st.ProductID]; !ok {
			return &ReferentialIntegrityError{Entity: "stock", Key: st.ProductID, Target: "product", Ref: st.ProductID}
		}
		if _, ok := s.storeByID[st.StoreID]; !ok {
			return &ReferentialIntegrityError{Entity: "stock", Key: st.ProductID, Target: "store", Ref: st.StoreID}
		}
	}
	return nil
}

// CustomerByID resolves a customer key. Missing keys are corrupt input and
// come back as *ReferentialIntegrityError.
func (s *EntityStore) CustomerByID(id int) (Customer, error) {
	i, ok := s.customerByID[id]
	if !ok {
		return Customer{}, &ReferentialIntegrityError{Entity: "lookup", Key: id, Target: "customer", Ref: id}
	}
	return s.Customers[i], nil
}

func (s *EntityStore) OrderByID(id int) (Order, error) {
	i, ok := s.orderByID[id]
	if !ok {
		return Order{}, &ReferentialIntegrityError{Entity: "lookup", Key: id, Target: "order", Ref: id}
	}
	return s.Orders[i], nil
}

func (s *EntityStore) ProductByID(id int) (Product, error) {
	i, ok := s.productByID[id]
	if !ok {
		return Product{}, &ReferentialIntegrityError{Entity: "lookup", Key: id, Target: "product", Ref: id}
	}
	return s.Products[i], nil
}

func (s *EntityStore) StoreByID(id int) (Store, error) {
	i, ok := s.storeByID[id]
	if !ok {
		return Store{}, &ReferentialIntegrityError{Entity: "lookup", Key: id, Target: "store", Ref: id}
	}
	return s.Stores[i], nil
}
