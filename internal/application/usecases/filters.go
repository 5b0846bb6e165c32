package usecases

import (
	"errors"
	"fmt"
	"time"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
	"github.com/LeeFlannery/dashboard-playground/internal/utils"
)

// ErrInvalidFilter indica um parâmetro de filtro inválido
var ErrInvalidFilter = errors.New("filtro inválido")

// DashboardFilters restringe as coleções de um snapshot antes da agregação.
// Campos vazios não filtram.
type DashboardFilters struct {
	DateFrom       time.Time
	DateTo         time.Time
	UserRole       entities.UserRole
	DeviceType     entities.DeviceType
	ConversionType entities.ConversionType
	Source         entities.ConversionSource
}

// Dataset é a visão filtrada de um snapshot
type Dataset struct {
	Seed        uint64
	GeneratedAt time.Time
	Sessions    []entities.Session
	Users       []entities.User
	Conversions []entities.Conversion
}

// ParseFilters interpreta os parâmetros de query do dashboard.
// "to" inclui o dia inteiro.
func ParseFilters(params map[string]string) (DashboardFilters, error) {
	var f DashboardFilters

	if v := params["from"]; v != "" {
		from, err := utils.ParseDate(v)
		if err != nil {
			return f, fmt.Errorf("%w: 'from': %v", ErrInvalidFilter, err)
		}
		f.DateFrom = from
	}
	if v := params["to"]; v != "" {
		to, err := utils.ParseDate(v)
		if err != nil {
			return f, fmt.Errorf("%w: 'to': %v", ErrInvalidFilter, err)
		}
		f.DateTo = utils.EndOfDay(to)
	}
	if !f.DateFrom.IsZero() && !f.DateTo.IsZero() && f.DateFrom.After(f.DateTo) {
		return f, fmt.Errorf("%w: 'from' posterior a 'to'", ErrInvalidFilter)
	}

	if v := params["user_role"]; v != "" {
		f.UserRole = entities.UserRole(v)
		if !f.UserRole.Valid() {
			return f, fmt.Errorf("%w: user_role %q", ErrInvalidFilter, v)
		}
	}
	if v := params["device_type"]; v != "" {
		f.DeviceType = entities.DeviceType(v)
		if !f.DeviceType.Valid() {
			return f, fmt.Errorf("%w: device_type %q", ErrInvalidFilter, v)
		}
	}
	if v := params["conversion_type"]; v != "" {
		f.ConversionType = entities.ConversionType(v)
		if !f.ConversionType.Valid() {
			return f, fmt.Errorf("%w: conversion_type %q", ErrInvalidFilter, v)
		}
	}
	if v := params["source"]; v != "" {
		f.Source = entities.ConversionSource(v)
		if !f.Source.Valid() {
			return f, fmt.Errorf("%w: source %q", ErrInvalidFilter, v)
		}
	}

	return f, nil
}

// Params retorna os filtros ativos no formato dos parâmetros de query
func (f DashboardFilters) Params() map[string]string {
	params := make(map[string]string)
	if !f.DateFrom.IsZero() {
		params["from"] = utils.DateKey(f.DateFrom)
	}
	if !f.DateTo.IsZero() {
		params["to"] = utils.DateKey(f.DateTo)
	}
	if f.UserRole != "" {
		params["user_role"] = string(f.UserRole)
	}
	if f.DeviceType != "" {
		params["device_type"] = string(f.DeviceType)
	}
	if f.ConversionType != "" {
		params["conversion_type"] = string(f.ConversionType)
	}
	if f.Source != "" {
		params["source"] = string(f.Source)
	}
	return params
}

// Apply retorna as coleções do snapshot que passam pelos filtros.
// O snapshot não é modificado.
func (f DashboardFilters) Apply(snap *entities.Snapshot) Dataset {
	ds := Dataset{
		Seed:        snap.Seed,
		GeneratedAt: snap.GeneratedAt,
		Sessions:    make([]entities.Session, 0, len(snap.Sessions)),
		Users:       make([]entities.User, 0, len(snap.Users)),
		Conversions: make([]entities.Conversion, 0, len(snap.Conversions)),
	}

	for _, s := range snap.Sessions {
		if f.inRange(s.StartTime) && (f.DeviceType == "" || s.DeviceType == f.DeviceType) {
			ds.Sessions = append(ds.Sessions, s)
		}
	}
	for _, u := range snap.Users {
		if f.inRange(u.CreatedAt) && (f.UserRole == "" || u.Role == f.UserRole) {
			ds.Users = append(ds.Users, u)
		}
	}
	for _, c := range snap.Conversions {
		if !f.inRange(c.Timestamp) {
			continue
		}
		if f.ConversionType != "" && c.Type != f.ConversionType {
			continue
		}
		if f.Source != "" && c.Source != f.Source {
			continue
		}
		ds.Conversions = append(ds.Conversions, c)
	}

	return ds
}

func (f DashboardFilters) inRange(t time.Time) bool {
	if !f.DateFrom.IsZero() && t.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && t.After(f.DateTo) {
		return false
	}
	return true
}
