package service_test

import "github.com/garageline/garage-mock-backend/internal/model"

// fakeStore is a hand-rolled fixture store for service tests.
type fakeStore struct {
	crm      map[string]model.CRMRecord
	tires    map[string]model.TireCatalogEntry
	services map[string]model.ServiceEstimateTemplate
}

func (f *fakeStore) Customer(plateKey string) (model.CRMRecord, bool) {
	rec, ok := f.crm[plateKey]
	return rec, ok
}

func (f *fakeStore) TireCatalog(plateKey string) (model.TireCatalogEntry, bool) {
	entry, ok := f.tires[plateKey]
	return entry, ok
}

func (f *fakeStore) ServiceTemplate(serviceType string) (model.ServiceEstimateTemplate, bool) {
	tpl, ok := f.services[serviceType]
	return tpl, ok
}
