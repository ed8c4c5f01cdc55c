// Package parser reads uploaded timesheet workbooks into raw tables.
package parser
