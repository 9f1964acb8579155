package listquery

import "strings"

// Пакет реализует клиентскую фильтрацию и постраничный вывод списков.
// Источник никогда не мутируется, относительный порядок элементов
// сохраняется, результат детерминирован.

// Filter возвращает новый слайс из элементов, удовлетворяющих предикату,
// в исходном относительном порядке
func Filter[T any](items []T, pred func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}

// Page возвращает 1-индексированную страницу размера size:
// срез [(page-1)*size, page*size) отфильтрованной последовательности.
// Страницы вне диапазона дают пустой слайс, а не ошибку.
func Page[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ExactMatch точное совпадение по полю категории.
// Пустой критерий пропускает все элементы.
func ExactMatch(criterion, value string) bool {
	if criterion == "" {
		return true
	}
	return criterion == value
}

// CodeMatch регистронезависимое вхождение подстроки в поле кода.
// Пустой критерий пропускает все элементы.
func CodeMatch(criterion, value string) bool {
	trimmed := strings.TrimSpace(criterion)
	if trimmed == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(trimmed))
}
