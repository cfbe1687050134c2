package page

import "html/template"

var homePageTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Site.Title}}</title>
    <meta name="description" content="{{.Site.Tagline}}">
    <link rel="icon" href="/static/favicon.svg" type="image/svg+xml">
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        html { scroll-behavior: smooth; }
        body {
            background: #0f172a;
            color: #e2e8f0;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            line-height: 1.6;
        }
        a { color: #f59e0b; text-decoration: none; }
        a:hover { text-decoration: underline; }

        .navbar {
            position: sticky;
            top: 0;
            z-index: 10;
            display: flex;
            align-items: center;
            justify-content: space-between;
            padding: 0.75rem 1.5rem;
            background: #0f172a;
            transition: box-shadow 0.3s ease;
        }
        .navbar.scrolled { box-shadow: 0 4px 12px rgba(0, 0, 0, 0.5); }
        .brand { font-size: 1.25rem; font-weight: 700; color: #e2e8f0; letter-spacing: 0.05em; }
        .site-nav { display: flex; gap: 1.5rem; }
        .site-nav a { color: #94a3b8; font-size: 0.9rem; }
        .site-nav a:hover { color: #e2e8f0; text-decoration: none; }
        .menu-toggle {
            display: none;
            flex-direction: column;
            gap: 4px;
            background: none;
            border: none;
            padding: 6px;
            cursor: pointer;
        }
        .menu-toggle span { width: 22px; height: 2px; background: #e2e8f0; }
        @media (max-width: 640px) {
            .menu-toggle { display: flex; }
            .site-nav {
                display: none;
                position: absolute;
                top: 100%;
                left: 0;
                right: 0;
                flex-direction: column;
                gap: 0;
                background: #1e293b;
                padding: 0.5rem 0;
            }
            .site-nav.open { display: flex; }
            .site-nav a { padding: 0.75rem 1.5rem; }
        }

        .hero { text-align: center; padding: 5rem 1.5rem 4rem; }
        .hero h1 { font-size: 2.5rem; letter-spacing: 0.1em; }
        .hero p { color: #94a3b8; margin-top: 0.5rem; }

        main section { max-width: 860px; margin: 0 auto; padding: 3rem 1.5rem; }
        main h2 { font-size: 1.5rem; margin-bottom: 1.5rem; color: #f59e0b; }

        .event-row {
            display: flex;
            gap: 1.25rem;
            padding: 1rem 0;
            border-bottom: 1px solid #1e293b;
        }
        .event-date {
            display: flex;
            flex-direction: column;
            align-items: center;
            min-width: 64px;
            padding: 0.5rem;
            background: #1e293b;
            border-radius: 8px;
            height: fit-content;
        }
        .event-day { font-size: 1.5rem; font-weight: 700; }
        .event-month { font-size: 0.75rem; color: #f59e0b; }
        .event-year { font-size: 0.75rem; color: #94a3b8; }
        .event-title { font-size: 1.1rem; }
        .event-description { color: #94a3b8; font-size: 0.9rem; }
        .event-meta { color: #94a3b8; font-size: 0.85rem; margin-top: 0.25rem; }
        .event-tickets {
            display: inline-block;
            margin-top: 0.5rem;
            padding: 0.375rem 1rem;
            background: #f59e0b;
            color: #0f172a;
            border-radius: 6px;
            font-size: 0.85rem;
            font-weight: 600;
        }
        .event-tickets:hover { opacity: 0.9; text-decoration: none; }

        .video-grid {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
            gap: 1.5rem;
        }
        .video-frame { position: relative; padding-top: 56.25%; background: #000; border-radius: 8px; overflow: hidden; }
        .video-frame iframe { position: absolute; inset: 0; width: 100%; height: 100%; border: 0; }
        .video-caption { margin-top: 0.5rem; font-size: 0.9rem; color: #94a3b8; }

        .section-fallback { color: #94a3b8; font-style: italic; }

        .contact-form { display: flex; flex-direction: column; gap: 0.75rem; max-width: 480px; }
        .contact-form label { font-size: 0.85rem; color: #94a3b8; }
        .contact-form input, .contact-form textarea {
            width: 100%;
            padding: 0.625rem 0.75rem;
            border-radius: 6px;
            border: 1px solid #334155;
            background: #1e293b;
            color: #fff;
            font-size: 0.875rem;
            font-family: inherit;
            outline: none;
        }
        .contact-form input:focus, .contact-form textarea:focus { border-color: #f59e0b; }
        .contact-form textarea { min-height: 120px; resize: vertical; }
        .contact-form button {
            align-self: flex-start;
            background: #f59e0b;
            color: #0f172a;
            padding: 0.625rem 1.5rem;
            border: none;
            border-radius: 6px;
            font-size: 0.875rem;
            font-weight: 600;
            cursor: pointer;
        }
        .contact-form button:hover { opacity: 0.9; }
        .contact-form button:disabled { opacity: 0.5; cursor: not-allowed; }
        .contact-status { font-size: 0.85rem; display: none; }
        .contact-status.ok { color: #22c55e; display: block; }
        .contact-status.failed { color: #ef4444; display: block; }

        .site-footer {
            text-align: center;
            padding: 2rem 1.5rem;
            border-top: 1px solid #1e293b;
            color: #94a3b8;
            font-size: 0.85rem;
        }
        .site-footer .social { margin-bottom: 0.5rem; display: flex; justify-content: center; gap: 1rem; }

        .reveal-item, .reveal-section {
            opacity: 0;
            transform: translateY(12px);
            transition: opacity 0.5s ease, transform 0.5s ease;
        }
        .reveal-item.visible, .reveal-section.visible { opacity: 1; transform: none; }
        @media (prefers-reduced-motion: reduce) {
            .reveal-item, .reveal-section { opacity: 1; transform: none; transition: none; }
        }
    </style>
</head>
<body>
    <header class="navbar" id="navbar">
        <a class="brand" href="#top">{{.Site.Title}}</a>
        <button class="menu-toggle" id="menu-toggle" aria-expanded="false" aria-label="Menü öffnen">
            <span></span><span></span><span></span>
        </button>
        <nav class="site-nav" id="site-nav">
            {{range .Site.Nav}}<a href="{{.URL}}">{{.Label}}</a>
            {{end}}
        </nav>
    </header>
    <main id="top">
        <div class="hero">
            <h1>{{.Site.Title}}</h1>
            <p>{{.Site.Tagline}}</p>
        </div>
{{if .Site.Sections.Events.Enabled}}
        <section id="events" class="reveal-section">
            <h2>{{.Site.Sections.Events.Heading}}</h2>
            <div class="events-list" id="events-list">{{.EventsFragment}}</div>
        </section>
{{end}}
{{if .Site.Sections.Videos.Enabled}}
        <section id="videos" class="reveal-section">
            <h2>{{.Site.Sections.Videos.Heading}}</h2>
            <div class="video-grid" id="video-grid">{{.VideosFragment}}</div>
        </section>
{{end}}
{{if .Site.Sections.Contact.Enabled}}
        <section id="contact" class="reveal-section">
            <h2>{{.Site.Sections.Contact.Heading}}</h2>
            <form class="contact-form" id="contact-form">
                <label for="contact-name">Name</label>
                <input type="text" id="contact-name" name="name" required>
                <label for="contact-email">E-Mail</label>
                <input type="email" id="contact-email" name="email" required>
                <label for="contact-message">Nachricht</label>
                <textarea id="contact-message" name="message" required></textarea>
                <button type="submit" id="contact-submit">Senden</button>
                <p class="contact-status" id="contact-status"></p>
            </form>
        </section>
{{end}}
    </main>
    <footer class="site-footer">
        {{if .Site.Social}}<div class="social">
            {{range .Site.Social}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Label}}</a>
            {{end}}
        </div>{{end}}
        <p>&copy; {{.Year}} {{.Site.Title}}</p>
    </footer>
    <script nonce="{{.Nonce}}">
        (function() {
            var toggle = document.getElementById('menu-toggle');
            var nav = document.getElementById('site-nav');
            if (toggle && nav) {
                toggle.addEventListener('click', function() {
                    var open = nav.classList.toggle('open');
                    toggle.setAttribute('aria-expanded', open ? 'true' : 'false');
                });
                nav.querySelectorAll('a').forEach(function(link) {
                    link.addEventListener('click', function() {
                        nav.classList.remove('open');
                        toggle.setAttribute('aria-expanded', 'false');
                    });
                });
            }

            var navbar = document.getElementById('navbar');
            if (navbar) {
                var onScroll = function() {
                    if (window.scrollY > 10) {
                        navbar.classList.add('scrolled');
                    } else {
                        navbar.classList.remove('scrolled');
                    }
                };
                window.addEventListener('scroll', onScroll, { passive: true });
                onScroll();
            }

            var marked = document.querySelectorAll('.reveal-item, .reveal-section');
            if ('IntersectionObserver' in window && marked.length > 0) {
                var observer = new IntersectionObserver(function(entries) {
                    entries.forEach(function(entry) {
                        if (entry.isIntersecting) {
                            entry.target.classList.add('visible');
                            observer.unobserve(entry.target);
                        }
                    });
                }, { threshold: 0.15 });
                marked.forEach(function(el) { observer.observe(el); });
            } else {
                marked.forEach(function(el) { el.classList.add('visible'); });
            }

            var form = document.getElementById('contact-form');
            if (form) {
                form.addEventListener('submit', function(e) {
                    e.preventDefault();
                    var btn = document.getElementById('contact-submit');
                    var status = document.getElementById('contact-status');
                    btn.disabled = true;
                    status.className = 'contact-status';
                    fetch('/api/contact', {
                        method: 'POST',
                        headers: {'Content-Type': 'application/json'},
                        body: JSON.stringify({
                            name: document.getElementById('contact-name').value,
                            email: document.getElementById('contact-email').value,
                            message: document.getElementById('contact-message').value
                        })
                    }).then(function(r) {
                        if (r.ok) {
                            status.textContent = 'Vielen Dank! Ihre Nachricht wurde gesendet.';
                            status.className = 'contact-status ok';
                            form.reset();
                        } else {
                            status.textContent = 'Ihre Nachricht konnte nicht gesendet werden. Bitte versuchen Sie es später erneut.';
                            status.className = 'contact-status failed';
                        }
                        btn.disabled = false;
                    }).catch(function() {
                        status.textContent = 'Ihre Nachricht konnte nicht gesendet werden. Bitte versuchen Sie es später erneut.';
                        status.className = 'contact-status failed';
                        btn.disabled = false;
                    });
                });
            }
        })();
    </script>
</body>
</html>`))

var notFoundPageTemplate = template.Must(template.New("not-found").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Seite nicht gefunden – {{.Site.Title}}</title>
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        html, body { width: 100%; height: 100%; background: #0f172a; }
        body {
            color: #e2e8f0;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            display: flex;
            align-items: center;
            justify-content: center;
        }
        .container { text-align: center; padding: 2rem; }
        h1 { font-size: 1.5rem; margin-bottom: 0.5rem; }
        p { color: #94a3b8; margin-bottom: 1rem; }
        a { color: #f59e0b; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Seite nicht gefunden</h1>
        <p>Die angeforderte Seite existiert nicht.</p>
        <a href="/">Zur Startseite</a>
    </div>
</body>
</html>`))
