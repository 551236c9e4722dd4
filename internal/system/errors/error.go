/*
 * Copyright (c) 2025-2026, ClinicDir, Inc. (https://clinicdir.com).
 *
 * ClinicDir, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package errors

import (
	"fmt"
	"strings"
)

type ErrorMessage struct {
	Code        string `json:"error_code"`
	Message     string `json:"error_message"`
	Description string `json:"error_description"`
}

type ClientError struct {
	ErrorMessage
	StatusCode int
}

type ServerError struct {
	ErrorMessage
	Err error
}

// ValidationError is returned when a requested operation is missing
// required fields. MissingFields carries the exact field names so callers
// can surface them to the reviewer.
type ValidationError struct {
	ErrorMessage
	MissingFields []string
}

// ConflictError is returned when a state transition is attempted from a
// state that does not permit it, or when a concurrent transition won the
// race. No state change has occurred when it is returned.
type ConflictError struct {
	ErrorMessage
}

// NotFoundError is returned when a referenced draft or listing id does
// not exist.
type NotFoundError struct {
	ErrorMessage
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: missing fields: %s", e.Code, e.Message, strings.Join(e.MissingFields, ", "))
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewServerError(msg ErrorMessage, cause error) *ServerError {
	return &ServerError{
		ErrorMessage: msg,
		Err:          cause,
	}
}

func NewClientError(msg ErrorMessage, code int) *ClientError {
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   code,
	}
}

func NewValidationError(msg ErrorMessage, missingFields []string) *ValidationError {
	msg.Description = fmt.Sprintf("Missing required fields: %s.", strings.Join(missingFields, ", "))
	return &ValidationError{
		ErrorMessage:  msg,
		MissingFields: missingFields,
	}
}

func NewConflictError(msg ErrorMessage) *ConflictError {
	return &ConflictError{
		ErrorMessage: msg,
	}
}

func NewNotFoundError(msg ErrorMessage) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: msg,
	}
}
