// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resourcehttp

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/resourceserver/resource"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, p string) (resource.Resource, error) {
	arguments := m.Called(ctx, p)
	return arguments.Get(0).(resource.Resource), arguments.Error(1)
}
